package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/pkg/cache"
	"github.com/nexhr/orgassist/internal/repository"
)

type RelationshipService struct {
	repo  *repository.RelationshipRepository
	cache *cache.OrgCache
}

func NewRelationshipService(repo *repository.RelationshipRepository, orgCache *cache.OrgCache) *RelationshipService {
	return &RelationshipService{repo: repo, cache: orgCache}
}

func (s *RelationshipService) List(ctx context.Context, orgID uuid.UUID) ([]model.ReportingRelationship, error) {
	return s.repo.FindByOrganization(ctx, orgID)
}

// Create adds a manager -> report edge. Existing edges for the same report
// are logged but not rejected; cycle prevention is not enforced at write
// time, the read-side walkers carry visited-set guards instead.
func (s *RelationshipService) Create(ctx context.Context, rel *model.ReportingRelationship) error {
	existing, err := s.repo.FindByReport(ctx, rel.ReportID)
	if err == nil && len(existing) > 0 {
		log.Printf("report %s already has %d manager edge(s)", rel.ReportID, len(existing))
	}
	if err := s.repo.Create(ctx, rel); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *RelationshipService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *RelationshipService) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}
