package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/intent"
	"github.com/nexhr/orgassist/internal/model"
	"github.com/nexhr/orgassist/internal/personality"
)

// summarySeparator joins the summary fragments of an EnrichedContext.
const summarySeparator = " | "

// PersonRelationships pairs a resolved person with their single-hop
// reporting neighborhood.
type PersonRelationships struct {
	Person        model.Person   `json:"person"`
	Manager       *model.Person  `json:"manager,omitempty"`
	DirectReports []model.Person `json:"direct_reports"`
}

type PersonProfile struct {
	Person  model.Person         `json:"person"`
	Profile *personality.Profile `json:"profile"`
}

type PersonalityInsights struct {
	Profiles          map[uuid.UUID]PersonProfile `json:"profiles"`
	TeamCompatibility *TeamCompatibility          `json:"team_compatibility,omitempty"`
}

// EnrichedContext is the per-query bundle handed to prompt rendering. It is
// built once and discarded after the LLM call.
type EnrichedContext struct {
	Intent              intent.Result         `json:"intent"`
	People              []model.Person        `json:"people"`
	Relationships       []PersonRelationships `json:"relationships"`
	Documents           []model.Document      `json:"documents"`
	PersonalityInsights PersonalityInsights   `json:"personality_insights"`
	Departments         []model.Department    `json:"departments"`
	Recommendations     []string              `json:"recommendations"`
	Summary             string                `json:"summary"`
}

// ContextService orchestrates the intent detector and the directory service
// into an intent-specific context bundle. It has no error path of its own:
// the directory layer already degrades every failure to absence.
type ContextService struct {
	detector  *intent.Detector
	directory *DirectoryService
}

func NewContextService(detector *intent.Detector, directory *DirectoryService) *ContextService {
	return &ContextService{detector: detector, directory: directory}
}

func (s *ContextService) BuildContext(ctx context.Context, orgID uuid.UUID, prompt string) *EnrichedContext {
	result := s.detector.Detect(prompt)
	ec := &EnrichedContext{
		Intent:              result,
		PersonalityInsights: PersonalityInsights{Profiles: map[uuid.UUID]PersonProfile{}},
	}

	if result.QueryType.NeedsPeopleData {
		s.resolvePeople(ctx, orgID, result.Entities, ec)
	}
	if result.QueryType.NeedsRelationshipData {
		for _, person := range ec.People {
			ec.Relationships = append(ec.Relationships, PersonRelationships{
				Person:        person,
				Manager:       s.directory.ManagerFor(ctx, person.ID),
				DirectReports: s.directory.DirectReports(ctx, person.ID),
			})
		}
	}
	if result.QueryType.NeedsDocumentData {
		s.resolveDocuments(ctx, orgID, result, ec)
	}
	if result.QueryType.NeedsEnneagramData {
		for _, person := range ec.People {
			if profile := personality.ProfileFor(person.EnneagramType); profile != nil {
				ec.PersonalityInsights.Profiles[person.ID] = PersonProfile{Person: person, Profile: profile}
			}
		}
		if len(ec.People) > 1 {
			compat := scoreTeam(ec.People)
			ec.PersonalityInsights.TeamCompatibility = &compat
		}
	}

	ec.Recommendations = s.recommendations(ctx, result.PrimaryIntent, ec)
	ec.Summary = summarize(ec)
	return ec
}

// resolvePeople unions the per-entity-type lookups, deduplicated by id.
func (s *ContextService) resolvePeople(ctx context.Context, orgID uuid.UUID, entities intent.Entities, ec *EnrichedContext) {
	seen := map[uuid.UUID]bool{}
	add := func(people ...model.Person) {
		for _, p := range people {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			ec.People = append(ec.People, p)
		}
	}

	for _, ref := range entities.People {
		var person *model.Person
		if strings.Contains(ref, "@") {
			person = s.directory.EmployeeByEmail(ctx, orgID, ref)
		} else {
			person = s.directory.EmployeeByName(ctx, orgID, ref)
		}
		if person != nil {
			add(*person)
		}
	}
	for _, dept := range entities.Departments {
		if resolved := s.directory.DepartmentByName(ctx, orgID, dept); resolved != nil {
			ec.Departments = append(ec.Departments, *resolved)
		}
		add(s.directory.EmployeesByDepartment(ctx, orgID, dept)...)
	}
	for _, skill := range entities.Skills {
		add(s.directory.EmployeesWithSkill(ctx, orgID, skill)...)
	}
	for _, location := range entities.Locations {
		add(s.directory.EmployeesByLocation(ctx, orgID, location)...)
	}
}

// resolveDocuments searches by each extracted document type. Conflict and
// delegation intents inject fixed supplementary searches regardless of the
// extracted entities.
func (s *ContextService) resolveDocuments(ctx context.Context, orgID uuid.UUID, result intent.Result, ec *EnrichedContext) {
	queries := append([]string{}, result.Entities.DocumentTypes...)
	switch result.PrimaryIntent {
	case intent.IntentConflictResolution:
		queries = append(queries, "conflict resolution", "communication")
	case intent.IntentDelegation:
		queries = append(queries, "delegation")
	}

	seen := map[uuid.UUID]bool{}
	for _, q := range queries {
		for _, doc := range s.directory.SearchDocuments(ctx, orgID, q, "") {
			if seen[doc.ID] {
				continue
			}
			seen[doc.ID] = true
			ec.Documents = append(ec.Documents, doc)
		}
	}
}

func (s *ContextService) recommendations(ctx context.Context, primary intent.Intent, ec *EnrichedContext) []string {
	switch primary {
	case intent.IntentTeamComposition:
		return teamCompositionRecommendations(ec)
	case intent.IntentConflictResolution:
		return conflictRecommendations(ec.People)
	case intent.IntentDelegation:
		return s.delegationRecommendations(ctx, ec)
	case intent.IntentDepartmentOverview:
		return departmentOverviewRecommendations(ec)
	default:
		return nil
	}
}

func teamCompositionRecommendations(ec *EnrichedContext) []string {
	var recs []string
	if compat := ec.PersonalityInsights.TeamCompatibility; compat != nil {
		recs = append(recs, fmt.Sprintf("Projected team compatibility is %d%%.", compat.Score))
		recs = append(recs, compat.Recommendations...)
	}
	for _, person := range ec.People {
		profile := personality.ProfileFor(person.EnneagramType)
		if profile == nil || len(profile.Strengths) == 0 {
			continue
		}
		recs = append(recs, fmt.Sprintf("%s brings: %s.", person.Name, strings.Join(profile.Strengths, "; ")))
	}
	return recs
}

// conflictRecommendations reads only the first two resolved people. Further
// matches are deliberately ignored for this purpose.
func conflictRecommendations(people []model.Person) []string {
	if len(people) < 2 {
		return []string{"Identify the two people involved and schedule a facilitated conversation."}
	}
	a, b := people[0], people[1]
	recs := []string{
		fmt.Sprintf("Schedule a facilitated conversation between %s and %s.", a.Name, b.Name),
	}
	if pa := personality.ProfileFor(a.EnneagramType); pa != nil {
		recs = append(recs, fmt.Sprintf("Approaching %s: %s", a.Name, pa.Communication))
	}
	if pb := personality.ProfileFor(b.EnneagramType); pb != nil {
		recs = append(recs, fmt.Sprintf("Approaching %s: %s", b.Name, pb.Communication))
	}
	return recs
}

func (s *ContextService) delegationRecommendations(ctx context.Context, ec *EnrichedContext) []string {
	if len(ec.People) == 0 {
		return []string{"Name the person delegating so their reports can be considered."}
	}
	delegator := ec.People[0]
	reports := s.directory.DirectReports(ctx, delegator.ID)
	if len(reports) == 0 {
		return []string{fmt.Sprintf("%s has no direct reports on record; consider peers or another team.", delegator.Name)}
	}
	names := make([]string, 0, len(reports))
	for _, r := range reports {
		names = append(names, r.Name)
	}
	return []string{
		fmt.Sprintf("%s can delegate to: %s.", delegator.Name, strings.Join(names, ", ")),
		"Match the task to each report's listed responsibilities before assigning.",
	}
}

func departmentOverviewRecommendations(ec *EnrichedContext) []string {
	if len(ec.Departments) == 0 {
		return nil
	}
	var recs []string
	for _, dept := range ec.Departments {
		count := 0
		for _, person := range ec.People {
			if person.DepartmentID != nil && *person.DepartmentID == dept.ID {
				count++
			}
		}
		recs = append(recs, fmt.Sprintf("%s has %d member(s) in the resolved set.", dept.Name, count))
	}
	return recs
}

// summarize joins the non-empty count fragments with a fixed separator.
func summarize(ec *EnrichedContext) string {
	var parts []string
	if len(ec.People) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d relevant people", len(ec.People)))
	}
	if len(ec.Documents) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d relevant documents", len(ec.Documents)))
	}
	if compat := ec.PersonalityInsights.TeamCompatibility; compat != nil {
		parts = append(parts, fmt.Sprintf("Team compatibility: %d%%", compat.Score))
	}
	if len(ec.Relationships) > 0 {
		parts = append(parts, fmt.Sprintf("Mapped %d reporting relationships", len(ec.Relationships)))
	}
	return strings.Join(parts, summarySeparator)
}
