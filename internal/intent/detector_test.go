package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEmptyInput(t *testing.T) {
	d := NewDetector()
	res := d.Detect("")

	assert.Equal(t, IntentMixed, res.PrimaryIntent)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Empty(t, res.Entities.People)
	assert.Empty(t, res.Entities.Departments)
	assert.Empty(t, res.Entities.Skills)
	// Mixed still asks for people data.
	assert.True(t, res.QueryType.NeedsPeopleData)
	assert.False(t, res.QueryType.NeedsDocumentData)
}

func TestDetectNoKeywordsFallsBackToMixed(t *testing.T) {
	d := NewDetector()
	res := d.Detect("lorem ipsum dolor sit amet")

	assert.Equal(t, IntentMixed, res.PrimaryIntent)
	assert.Equal(t, 0.0, res.Confidence)
}

func TestDetectDocumentSearch(t *testing.T) {
	d := NewDetector()
	res := d.Detect("Can you find the vacation policy document?")

	assert.Equal(t, IntentDocumentSearch, res.PrimaryIntent)
	assert.Equal(t, 1.0, res.Confidence)
	assert.True(t, res.QueryType.NeedsDocumentData)
	assert.False(t, res.QueryType.NeedsPeopleData)
	assert.Contains(t, res.Entities.DocumentTypes, "policy")
}

func TestDetectTeamComposition(t *testing.T) {
	d := NewDetector()
	res := d.Detect("Who should lead a technical project with Sarah Johnson?")

	assert.Equal(t, IntentTeamComposition, res.PrimaryIntent)
	assert.True(t, res.QueryType.NeedsPeopleData)
	assert.True(t, res.QueryType.NeedsRelationshipData)
	assert.True(t, res.QueryType.NeedsEnneagramData)
	assert.Contains(t, res.Entities.People, "Sarah Johnson")
	assert.Equal(t, "technical", res.Entities.ProjectType)
}

func TestDetectEmployeeLookup(t *testing.T) {
	d := NewDetector()
	res := d.Detect("Who is Sarah Johnson?")

	assert.Equal(t, IntentEmployeeLookup, res.PrimaryIntent)
	assert.Contains(t, res.Entities.People, "Sarah Johnson")
}

func TestDetectTieBreakKeepsFirstRule(t *testing.T) {
	d := NewDetector()
	// One team keyword ("lead"), one document keyword ("report"): the rule
	// listed earlier wins the tie.
	res := d.Detect("lead report")

	assert.Equal(t, IntentTeamComposition, res.PrimaryIntent)
	assert.Equal(t, 0.5, res.Confidence)
}

func TestDetectConfidenceIsShareOfTotal(t *testing.T) {
	d := NewDetector()
	// Two conflict keywords, one document keyword.
	res := d.Detect("There is tension and friction over the policy")

	assert.Equal(t, IntentConflictResolution, res.PrimaryIntent)
	assert.InDelta(t, 2.0/3.0, res.Confidence, 1e-9)
}

func TestQueryTypeOverrides(t *testing.T) {
	d := NewDetector()

	res := d.Detect("Tell me about Bob Martin's personality")
	assert.Equal(t, IntentEmployeeLookup, res.PrimaryIntent)
	assert.True(t, res.QueryType.NeedsEnneagramData, "personality mention forces enneagram data")

	res = d.Detect("Who is in Dana Lee's chain of command?")
	assert.True(t, res.QueryType.NeedsRelationshipData, "chain of command forces relationship data")

	res = d.Detect("Is there friction and tension over the onboarding file?")
	assert.Equal(t, IntentConflictResolution, res.PrimaryIntent)
	assert.True(t, res.QueryType.NeedsDocumentData, "file mention forces document data")
}
