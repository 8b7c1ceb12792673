package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/cache"
	"github.com/nexhr/orgassist/internal/repository"
)

// PeopleService is the write side of the directory. Every mutation clears
// the whole org cache; there is no partial invalidation.
type PeopleService struct {
	repo  *repository.PersonRepository
	cache *cache.OrgCache
}

func NewPeopleService(repo *repository.PersonRepository, orgCache *cache.OrgCache) *PeopleService {
	return &PeopleService{repo: repo, cache: orgCache}
}

func (s *PeopleService) List(ctx context.Context, orgID uuid.UUID) ([]model.Person, error) {
	return s.repo.FindByOrganization(ctx, orgID)
}

func (s *PeopleService) Get(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PeopleService) Create(ctx context.Context, person *model.Person) error {
	if err := s.repo.Create(ctx, person); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *PeopleService) Update(ctx context.Context, person *model.Person) error {
	if err := s.repo.Update(ctx, person); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *PeopleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *PeopleService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
