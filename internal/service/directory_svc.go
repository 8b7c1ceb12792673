package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/personality"
	"github.com/nexhr/orgassist/internal/pkg/cache"
)

// Store interfaces consumed by the directory service. The concrete
// repositories satisfy them; tests substitute fakes to distinguish
// store faults from clean empty results.

type PersonStore interface {
	FindFirstByNameLike(ctx context.Context, orgID uuid.UUID, fragment string) (*model.Person, error)
	FindByEmail(ctx context.Context, orgID uuid.UUID, email string) (*model.Person, error)
	FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]model.Person, error)
	FindByResponsibility(ctx context.Context, orgID uuid.UUID, skill string) ([]model.Person, error)
	SearchProfiles(ctx context.Context, orgID uuid.UUID, term string) ([]model.Person, error)
	FindByLocation(ctx context.Context, orgID uuid.UUID, location string) ([]model.Person, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Person, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Person, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error)
}

type DepartmentStore interface {
	FindFirstByNameLike(ctx context.Context, orgID uuid.UUID, fragment string) (*model.Department, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Department, error)
}

type RelationshipStore interface {
	FindByReport(ctx context.Context, reportID uuid.UUID) ([]model.ReportingRelationship, error)
	FindByManager(ctx context.Context, managerID uuid.UUID) ([]model.ReportingRelationship, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.ReportingRelationship, error)
}

type DocumentStore interface {
	Search(ctx context.Context, orgID uuid.UUID, query, fileType string) ([]model.Document, error)
}

// TeamCompatibility is the aggregate pairwise score for a set of people.
type TeamCompatibility struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}

// DirectoryService resolves people, rosters, reporting relationships,
// documents and compatibility scores.
//
// Error policy: every operation absorbs store faults, logs them, and
// degrades to an empty or nil result. Callers never receive an error from
// this layer; a lookup miss and a store fault look the same from outside.
type DirectoryService struct {
	people PersonStore
	depts  DepartmentStore
	rels   RelationshipStore
	docs   DocumentStore
	cache  *cache.OrgCache
	logger *slog.Logger
}

func NewDirectoryService(people PersonStore, depts DepartmentStore, rels RelationshipStore, docs DocumentStore, orgCache *cache.OrgCache, logger *slog.Logger) *DirectoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryService{
		people: people,
		depts:  depts,
		rels:   rels,
		docs:   docs,
		cache:  orgCache,
		logger: logger,
	}
}

// EmployeeByName resolves a person by case-insensitive substring match.
// First match in store order wins when several rows match.
func (s *DirectoryService) EmployeeByName(ctx context.Context, orgID uuid.UUID, fragment string) *model.Person {
	person, err := s.people.FindFirstByNameLike(ctx, orgID, fragment)
	if err != nil {
		s.logger.Warn("employee lookup by name failed", "fragment", fragment, "err", err)
		return nil
	}
	return person
}

func (s *DirectoryService) EmployeeByEmail(ctx context.Context, orgID uuid.UUID, email string) *model.Person {
	person, err := s.people.FindByEmail(ctx, orgID, email)
	if err != nil {
		s.logger.Warn("employee lookup by email failed", "err", err)
		return nil
	}
	return person
}

// DepartmentByName resolves a department by fuzzy name match.
func (s *DirectoryService) DepartmentByName(ctx context.Context, orgID uuid.UUID, fragment string) *model.Department {
	dept, err := s.depts.FindFirstByNameLike(ctx, orgID, fragment)
	if err != nil {
		s.logger.Warn("department lookup failed", "fragment", fragment, "err", err)
		return nil
	}
	return dept
}

// EmployeesByDepartment resolves the department by fuzzy name match first;
// no department means an empty roster, not an error.
func (s *DirectoryService) EmployeesByDepartment(ctx context.Context, orgID uuid.UUID, nameFragment string) []model.Person {
	dept, err := s.depts.FindFirstByNameLike(ctx, orgID, nameFragment)
	if err != nil {
		s.logger.Warn("department lookup failed", "fragment", nameFragment, "err", err)
		return nil
	}
	if dept == nil {
		return nil
	}
	people, err := s.people.FindByDepartment(ctx, dept.ID)
	if err != nil {
		s.logger.Warn("department roster lookup failed", "department", dept.Name, "err", err)
		return nil
	}
	return people
}

// EmployeesWithSkill checks exact responsibility containment first. The
// broader bio/role scan runs only when that query errors; a clean empty
// result does not trigger the fallback.
func (s *DirectoryService) EmployeesWithSkill(ctx context.Context, orgID uuid.UUID, skill string) []model.Person {
	people, err := s.people.FindByResponsibility(ctx, orgID, skill)
	if err == nil {
		return people
	}
	s.logger.Warn("responsibility query failed, falling back to profile scan", "skill", skill, "err", err)
	people, err = s.people.SearchProfiles(ctx, orgID, skill)
	if err != nil {
		s.logger.Warn("profile scan failed", "skill", skill, "err", err)
		return nil
	}
	return people
}

func (s *DirectoryService) EmployeesByLocation(ctx context.Context, orgID uuid.UUID, location string) []model.Person {
	people, err := s.people.FindByLocation(ctx, orgID, location)
	if err != nil {
		s.logger.Warn("location lookup failed", "location", location, "err", err)
		return nil
	}
	return people
}

// Roster returns every person in the organization, read through the org
// cache.
func (s *DirectoryService) Roster(ctx context.Context, orgID uuid.UUID) []model.Person {
	if s.cache != nil {
		if v, ok := s.cache.Get(orgID.String(), "roster"); ok {
			if people, ok := v.([]model.Person); ok {
				return people
			}
		}
	}
	people, err := s.people.FindByOrganization(ctx, orgID)
	if err != nil {
		s.logger.Warn("roster lookup failed", "org", orgID, "err", err)
		return nil
	}
	if s.cache != nil {
		s.cache.Set(orgID.String(), "roster", people)
	}
	return people
}

func (s *DirectoryService) Departments(ctx context.Context, orgID uuid.UUID) []model.Department {
	if s.cache != nil {
		if v, ok := s.cache.Get(orgID.String(), "departments"); ok {
			if depts, ok := v.([]model.Department); ok {
				return depts
			}
		}
	}
	depts, err := s.depts.FindByOrganization(ctx, orgID)
	if err != nil {
		s.logger.Warn("departments lookup failed", "org", orgID, "err", err)
		return nil
	}
	if s.cache != nil {
		s.cache.Set(orgID.String(), "departments", depts)
	}
	return depts
}

func (s *DirectoryService) Relationships(ctx context.Context, orgID uuid.UUID) []model.ReportingRelationship {
	rels, err := s.rels.FindByOrganization(ctx, orgID)
	if err != nil {
		s.logger.Warn("relationships lookup failed", "org", orgID, "err", err)
		return nil
	}
	return rels
}

// ManagerFor resolves the single-hop manager. The schema allows multiple
// manager edges per report; when that happens the first edge wins and the
// inconsistency is logged.
func (s *DirectoryService) ManagerFor(ctx context.Context, personID uuid.UUID) *model.Person {
	rels, err := s.rels.FindByReport(ctx, personID)
	if err != nil {
		s.logger.Warn("manager edge lookup failed", "person", personID, "err", err)
		return nil
	}
	if len(rels) == 0 {
		return nil
	}
	if len(rels) > 1 {
		s.logger.Warn("person has multiple manager edges, using first", "person", personID, "edges", len(rels))
	}
	manager, err := s.people.FindByID(ctx, rels[0].ManagerID)
	if err != nil {
		s.logger.Warn("manager lookup failed", "person", personID, "err", err)
		return nil
	}
	return manager
}

func (s *DirectoryService) DirectReports(ctx context.Context, personID uuid.UUID) []model.Person {
	rels, err := s.rels.FindByManager(ctx, personID)
	if err != nil {
		s.logger.Warn("report edges lookup failed", "person", personID, "err", err)
		return nil
	}
	if len(rels) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(rels))
	for _, rel := range rels {
		ids = append(ids, rel.ReportID)
	}
	people, err := s.people.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("reports lookup failed", "person", personID, "err", err)
		return nil
	}
	return people
}

// TeamHierarchy expands direct reports breadth-first. The visited set guards
// against cycles, which the write path does not prevent.
func (s *DirectoryService) TeamHierarchy(ctx context.Context, managerID uuid.UUID) []model.Person {
	var team []model.Person
	visited := map[uuid.UUID]bool{managerID: true}
	queue := []uuid.UUID{managerID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, report := range s.DirectReports(ctx, current) {
			if visited[report.ID] {
				continue
			}
			visited[report.ID] = true
			team = append(team, report)
			queue = append(queue, report.ID)
		}
	}
	return team
}

// DelegationChain walks the management chain upward. It carries the same
// visited-set guard as TeamHierarchy so that a cyclic edge set terminates in
// both directions.
func (s *DirectoryService) DelegationChain(ctx context.Context, personID uuid.UUID) []model.Person {
	var chain []model.Person
	visited := map[uuid.UUID]bool{personID: true}

	current := personID
	for {
		manager := s.ManagerFor(ctx, current)
		if manager == nil || visited[manager.ID] {
			return chain
		}
		visited[manager.ID] = true
		chain = append(chain, *manager)
		current = manager.ID
	}
}

// AnalyzeTeamCompatibility scores every unordered pair of the given people
// that both carry a personality type code.
func (s *DirectoryService) AnalyzeTeamCompatibility(ctx context.Context, personIDs []uuid.UUID) TeamCompatibility {
	people, err := s.people.FindByIDs(ctx, personIDs)
	if err != nil {
		s.logger.Warn("compatibility people lookup failed", "err", err)
		return TeamCompatibility{Score: 50}
	}
	return scoreTeam(people)
}

// scoreTeam accumulates +1 per compatible pair, -0.5 per conflicting pair and
// +0.5 per neutral pair, then normalizes into 0-100. Zero scoreable pairs
// default to 50. Pair classification reads the first member's affinity lists
// only; the lists are asymmetric and that asymmetry is preserved.
func scoreTeam(people []model.Person) TeamCompatibility {
	result := TeamCompatibility{Score: 50}

	sum := 0.0
	pairs := 0
	for i := 0; i < len(people); i++ {
		a := personality.ProfileFor(people[i].EnneagramType)
		if a == nil {
			continue
		}
		for j := i + 1; j < len(people); j++ {
			b := personality.ProfileFor(people[j].EnneagramType)
			if b == nil {
				continue
			}
			pairs++
			switch personality.Classify(a, b) {
			case personality.RelationCompatible:
				sum += 1
				result.Strengths = appendUnique(result.Strengths,
					people[i].Name+" ("+a.DisplayName+") and "+people[j].Name+" ("+b.DisplayName+") naturally complement each other")
			case personality.RelationConflicting:
				sum -= 0.5
				result.Challenges = appendUnique(result.Challenges,
					people[i].Name+" ("+a.DisplayName+") and "+people[j].Name+" ("+b.DisplayName+") may experience friction")
				result.Recommendations = appendUnique(result.Recommendations,
					"When working with "+people[j].Name+": "+b.Communication)
			default:
				sum += 0.5
			}
		}
	}

	if pairs > 0 {
		result.Score = int(math.Round(((sum/float64(pairs))+1)/2*100))
	}
	return result
}

// SearchDocuments keyword-matches title/description with an optional file
// type filter, newest first.
func (s *DirectoryService) SearchDocuments(ctx context.Context, orgID uuid.UUID, query, fileType string) []model.Document {
	docs, err := s.docs.Search(ctx, orgID, query, fileType)
	if err != nil {
		s.logger.Warn("document search failed", "query", query, "err", err)
		return nil
	}
	return docs
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
