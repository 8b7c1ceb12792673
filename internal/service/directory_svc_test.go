package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhr/orgassist/internal/model"
)

// fakeStore is an in-memory implementation of the four store interfaces.
// Error injection fields let tests distinguish a store fault from a clean
// empty result, which is the distinction the service's fallback logic hinges
// on.
type fakeStore struct {
	people []model.Person
	depts  []model.Department
	rels   []model.ReportingRelationship
	docs   []model.Document

	respErr      error
	profileHits  []model.Person
	profileCalls int
}

func (f *fakeStore) FindFirstByNameLike(ctx context.Context, orgID uuid.UUID, fragment string) (*model.Person, error) {
	frag := strings.ToLower(fragment)
	for i := range f.people {
		if f.people[i].OrganizationID == orgID && strings.Contains(strings.ToLower(f.people[i].Name), frag) {
			return &f.people[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByEmail(ctx context.Context, orgID uuid.UUID, email string) (*model.Person, error) {
	for i := range f.people {
		if f.people[i].OrganizationID == orgID && f.people[i].Email == email {
			return &f.people[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]model.Person, error) {
	var out []model.Person
	for _, p := range f.people {
		if p.DepartmentID != nil && *p.DepartmentID == departmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByResponsibility(ctx context.Context, orgID uuid.UUID, skill string) ([]model.Person, error) {
	if f.respErr != nil {
		return nil, f.respErr
	}
	var out []model.Person
	for _, p := range f.people {
		if p.OrganizationID != orgID {
			continue
		}
		for _, r := range p.Responsibilities {
			if r == skill {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) SearchProfiles(ctx context.Context, orgID uuid.UUID, term string) ([]model.Person, error) {
	f.profileCalls++
	return f.profileHits, nil
}

func (f *fakeStore) FindByLocation(ctx context.Context, orgID uuid.UUID, location string) ([]model.Person, error) {
	var out []model.Person
	for _, p := range f.people {
		if p.OrganizationID == orgID && strings.EqualFold(p.Location, location) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Person, error) {
	var out []model.Person
	for _, p := range f.people {
		if p.OrganizationID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Person, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Person
	for _, p := range f.people {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	for i := range f.people {
		if f.people[i].ID == id {
			return &f.people[i], nil
		}
	}
	return nil, nil
}

type fakeDeptStore struct{ store *fakeStore }

func (f *fakeStore) deptStore() *fakeDeptStore { return &fakeDeptStore{store: f} }

func (f *fakeDeptStore) FindFirstByNameLike(ctx context.Context, orgID uuid.UUID, fragment string) (*model.Department, error) {
	frag := strings.ToLower(fragment)
	for i := range f.store.depts {
		if f.store.depts[i].OrganizationID == orgID && strings.Contains(strings.ToLower(f.store.depts[i].Name), frag) {
			return &f.store.depts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDeptStore) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Department, error) {
	var out []model.Department
	for _, d := range f.store.depts {
		if d.OrganizationID == orgID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeRelStore struct{ store *fakeStore }

func (f *fakeStore) relStore() *fakeRelStore { return &fakeRelStore{store: f} }

func (f *fakeRelStore) FindByReport(ctx context.Context, reportID uuid.UUID) ([]model.ReportingRelationship, error) {
	var out []model.ReportingRelationship
	for _, r := range f.store.rels {
		if r.ReportID == reportID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRelStore) FindByManager(ctx context.Context, managerID uuid.UUID) ([]model.ReportingRelationship, error) {
	var out []model.ReportingRelationship
	for _, r := range f.store.rels {
		if r.ManagerID == managerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRelStore) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.ReportingRelationship, error) {
	var out []model.ReportingRelationship
	for _, r := range f.store.rels {
		if r.OrganizationID == orgID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDocStore struct{ store *fakeStore }

func (f *fakeStore) docStore() *fakeDocStore { return &fakeDocStore{store: f} }

func (f *fakeDocStore) Search(ctx context.Context, orgID uuid.UUID, query, fileType string) ([]model.Document, error) {
	q := strings.ToLower(query)
	var out []model.Document
	for _, d := range f.store.docs {
		if d.OrganizationID != orgID {
			continue
		}
		if fileType != "" && d.FileType != fileType {
			continue
		}
		if strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Description), q) {
			out = append(out, d)
		}
	}
	return out, nil
}

func newTestDirectory(f *fakeStore) *DirectoryService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDirectoryService(f, f.deptStore(), f.relStore(), f.docStore(), nil, logger)
}

func testPerson(orgID uuid.UUID, name, enneagram string) model.Person {
	p := model.Person{
		OrganizationID: orgID,
		Name:           name,
		EnneagramType:  enneagram,
	}
	p.ID = uuid.New()
	return p
}

func edge(orgID, managerID, reportID uuid.UUID) model.ReportingRelationship {
	r := model.ReportingRelationship{
		OrganizationID: orgID,
		ManagerID:      managerID,
		ReportID:       reportID,
	}
	r.ID = uuid.New()
	return r
}

func TestEmployeesWithSkillEmptyResultDoesNotFallBack(t *testing.T) {
	orgID := uuid.New()
	f := &fakeStore{
		people:      []model.Person{testPerson(orgID, "Sarah Johnson", "1")},
		profileHits: []model.Person{testPerson(orgID, "Should Not Appear", "")},
	}
	svc := newTestDirectory(f)

	people := svc.EmployeesWithSkill(context.Background(), orgID, "negotiation")

	assert.Empty(t, people)
	assert.Equal(t, 0, f.profileCalls, "profile scan must not run on a clean empty result")
}

func TestEmployeesWithSkillFallsBackOnStoreError(t *testing.T) {
	orgID := uuid.New()
	hit := testPerson(orgID, "Mike Chen", "5")
	f := &fakeStore{
		respErr:     errors.New("jsonb operator missing"),
		profileHits: []model.Person{hit},
	}
	svc := newTestDirectory(f)

	people := svc.EmployeesWithSkill(context.Background(), orgID, "negotiation")

	require.Len(t, people, 1)
	assert.Equal(t, hit.ID, people[0].ID)
	assert.Equal(t, 1, f.profileCalls)
}

func TestEmployeesByDepartmentUnknownDepartment(t *testing.T) {
	orgID := uuid.New()
	svc := newTestDirectory(&fakeStore{})

	assert.Nil(t, svc.EmployeesByDepartment(context.Background(), orgID, "astrology"))
}

func TestManagerForMultipleEdgesUsesFirst(t *testing.T) {
	orgID := uuid.New()
	report := testPerson(orgID, "Dana Lee", "")
	first := testPerson(orgID, "Sarah Johnson", "")
	second := testPerson(orgID, "Mike Chen", "")
	f := &fakeStore{
		people: []model.Person{report, first, second},
		rels: []model.ReportingRelationship{
			edge(orgID, first.ID, report.ID),
			edge(orgID, second.ID, report.ID),
		},
	}
	svc := newTestDirectory(f)

	manager := svc.ManagerFor(context.Background(), report.ID)
	require.NotNil(t, manager)
	assert.Equal(t, first.ID, manager.ID)
}

func TestManagerForNoEdge(t *testing.T) {
	svc := newTestDirectory(&fakeStore{})
	assert.Nil(t, svc.ManagerFor(context.Background(), uuid.New()))
}

func TestTeamHierarchyTerminatesOnCycle(t *testing.T) {
	orgID := uuid.New()
	a := testPerson(orgID, "Alice Smith", "")
	b := testPerson(orgID, "Bob Jones", "")
	c := testPerson(orgID, "Carol White", "")
	f := &fakeStore{
		people: []model.Person{a, b, c},
		rels: []model.ReportingRelationship{
			edge(orgID, a.ID, b.ID),
			edge(orgID, b.ID, c.ID),
			edge(orgID, c.ID, a.ID),
		},
	}
	svc := newTestDirectory(f)

	team := svc.TeamHierarchy(context.Background(), a.ID)

	require.Len(t, team, 2)
	assert.Equal(t, b.ID, team[0].ID)
	assert.Equal(t, c.ID, team[1].ID)
}

func TestDelegationChainTerminatesOnCycle(t *testing.T) {
	orgID := uuid.New()
	a := testPerson(orgID, "Alice Smith", "")
	b := testPerson(orgID, "Bob Jones", "")
	c := testPerson(orgID, "Carol White", "")
	f := &fakeStore{
		people: []model.Person{a, b, c},
		rels: []model.ReportingRelationship{
			edge(orgID, a.ID, b.ID),
			edge(orgID, b.ID, c.ID),
			edge(orgID, c.ID, a.ID),
		},
	}
	svc := newTestDirectory(f)

	chain := svc.DelegationChain(context.Background(), a.ID)

	require.Len(t, chain, 2)
	assert.Equal(t, c.ID, chain[0].ID)
	assert.Equal(t, b.ID, chain[1].ID)
}

func TestDelegationChainLinear(t *testing.T) {
	orgID := uuid.New()
	ic := testPerson(orgID, "Dana Lee", "")
	lead := testPerson(orgID, "Mike Chen", "")
	vp := testPerson(orgID, "Sarah Johnson", "")
	f := &fakeStore{
		people: []model.Person{ic, lead, vp},
		rels: []model.ReportingRelationship{
			edge(orgID, vp.ID, lead.ID),
			edge(orgID, lead.ID, ic.ID),
		},
	}
	svc := newTestDirectory(f)

	chain := svc.DelegationChain(context.Background(), ic.ID)

	require.Len(t, chain, 2)
	assert.Equal(t, lead.ID, chain[0].ID)
	assert.Equal(t, vp.ID, chain[1].ID)
}

func TestScoreTeamConflictingPair(t *testing.T) {
	orgID := uuid.New()
	result := scoreTeam([]model.Person{
		testPerson(orgID, "Alice Smith", "1"),
		testPerson(orgID, "Bob Jones", "1"),
	})

	// One conflicting pair: ((-0.5)+1)/2*100 = 25.
	assert.Equal(t, 25, result.Score)
	assert.NotEmpty(t, result.Challenges)
	assert.NotEmpty(t, result.Recommendations)
	assert.Empty(t, result.Strengths)
}

func TestScoreTeamCompatiblePair(t *testing.T) {
	orgID := uuid.New()
	result := scoreTeam([]model.Person{
		testPerson(orgID, "Alice Smith", "1"),
		testPerson(orgID, "Bob Jones", "2"),
	})

	assert.Equal(t, 100, result.Score)
	assert.NotEmpty(t, result.Strengths)
	assert.Empty(t, result.Challenges)
}

func TestScoreTeamNeutralPair(t *testing.T) {
	orgID := uuid.New()
	result := scoreTeam([]model.Person{
		testPerson(orgID, "Alice Smith", "1"),
		testPerson(orgID, "Bob Jones", "3"),
	})

	assert.Equal(t, 75, result.Score)
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.Challenges)
}

func TestScoreTeamNoScoreablePairsDefaultsTo50(t *testing.T) {
	orgID := uuid.New()

	single := scoreTeam([]model.Person{testPerson(orgID, "Alice Smith", "1")})
	assert.Equal(t, 50, single.Score)
	assert.Empty(t, single.Strengths)
	assert.Empty(t, single.Challenges)

	untyped := scoreTeam([]model.Person{
		testPerson(orgID, "Alice Smith", ""),
		testPerson(orgID, "Bob Jones", ""),
	})
	assert.Equal(t, 50, untyped.Score)
}

func TestScoreTeamSkipsUntypedMembers(t *testing.T) {
	orgID := uuid.New()
	result := scoreTeam([]model.Person{
		testPerson(orgID, "Alice Smith", "1"),
		testPerson(orgID, "Bob Jones", ""),
		testPerson(orgID, "Carol White", "2"),
	})

	// Only the 1-2 pair is scoreable.
	assert.Equal(t, 100, result.Score)
}
