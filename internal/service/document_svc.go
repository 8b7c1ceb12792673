package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/cache"
	"github.com/nexhr/orgassist/internal/repository"
)

type DocumentService struct {
	repo  *repository.DocumentRepository
	cache *cache.OrgCache
}

func NewDocumentService(repo *repository.DocumentRepository, orgCache *cache.OrgCache) *DocumentService {
	return &DocumentService{repo: repo, cache: orgCache}
}

func (s *DocumentService) Search(ctx context.Context, orgID uuid.UUID, query, fileType string) ([]model.Document, error) {
	return s.repo.Search(ctx, orgID, query, fileType)
}

func (s *DocumentService) Create(ctx context.Context, doc *model.Document) error {
	if err := s.repo.Create(ctx, doc); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DocumentService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
