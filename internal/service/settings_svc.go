package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/assistant/prompt"
	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/cache"
	"github.com/nexhr/orgassist/internal/repository"
)

type SettingsService struct {
	repo  *repository.SettingsRepository
	cache *cache.OrgCache
}

func NewSettingsService(repo *repository.SettingsRepository, orgCache *cache.OrgCache) *SettingsService {
	return &SettingsService{repo: repo, cache: orgCache}
}

// Resolved returns the fully merged settings for a person, defaults filled.
func (s *SettingsService) Resolved(ctx context.Context, personID uuid.UUID) (prompt.Settings, error) {
	stored, err := s.repo.FindByPerson(ctx, personID)
	if err != nil {
		return prompt.DefaultSettings(), err
	}
	return prompt.MergeSettings(prompt.DefaultSettings(), stored), nil
}

func (s *SettingsService) Upsert(ctx context.Context, settings *model.AISettings) error {
	existing, err := s.repo.FindByPerson(ctx, settings.PersonID)
	if err != nil {
		return err
	}
	if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		err = s.repo.Update(ctx, settings)
	} else {
		err = s.repo.Create(ctx, settings)
	}
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate()
	}
	return nil
}
