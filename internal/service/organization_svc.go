package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/cache"
	"github.com/nexhr/orgassist/internal/repository"
)

// OrganizationService manages the tenant records themselves. It sits outside
// the org-scoped surface because an organization must exist before anything
// can be scoped to it.
type OrganizationService struct {
	repo  *repository.OrganizationRepository
	cache *cache.OrgCache
}

func NewOrganizationService(repo *repository.OrganizationRepository, orgCache *cache.OrgCache) *OrganizationService {
	return &OrganizationService{repo: repo, cache: orgCache}
}

func (s *OrganizationService) List(ctx context.Context, limit, offset int) ([]model.Organization, int64, error) {
	return s.repo.FindAll(ctx, limit, offset)
}

func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizationService) Create(ctx context.Context, org *model.Organization) error {
	return s.repo.Create(ctx, org)
}

func (s *OrganizationService) Update(ctx context.Context, org *model.Organization) error {
	if err := s.repo.Update(ctx, org); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *OrganizationService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
