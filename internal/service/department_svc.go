package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/cache"
	"github.com/nexhr/orgassist/internal/repository"
)

type DepartmentService struct {
	repo  *repository.DepartmentRepository
	cache *cache.OrgCache
}

func NewDepartmentService(repo *repository.DepartmentRepository, orgCache *cache.OrgCache) *DepartmentService {
	return &DepartmentService{repo: repo, cache: orgCache}
}

func (s *DepartmentService) List(ctx context.Context, orgID uuid.UUID) ([]model.Department, error) {
	return s.repo.FindByOrganization(ctx, orgID)
}

func (s *DepartmentService) Create(ctx context.Context, dept *model.Department) error {
	if err := s.repo.Create(ctx, dept); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DepartmentService) Update(ctx context.Context, dept *model.Department) error {
	if err := s.repo.Update(ctx, dept); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *DepartmentService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
