package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNamesQuoted(t *testing.T) {
	e := ExtractEntities(`Find the profile for "sarah johnson" please`)
	assert.Contains(t, e.People, "sarah johnson")
}

func TestExtractNamesPossessive(t *testing.T) {
	e := ExtractEntities("What is Sarah's manager thinking?")
	assert.Contains(t, e.People, "Sarah")
}

func TestExtractNamesCapitalizedRun(t *testing.T) {
	e := ExtractEntities("Put Mike Chen and Dana Lee on the project")
	assert.Contains(t, e.People, "Mike Chen")
	assert.Contains(t, e.People, "Dana Lee")
}

func TestExtractNamesDeduplicated(t *testing.T) {
	e := ExtractEntities(`Who is Sarah Johnson? I mean "Sarah Johnson" from sales`)
	count := 0
	for _, p := range e.People {
		if p == "Sarah Johnson" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractEmailsLandInPeople(t *testing.T) {
	e := ExtractEntities("Please loop in sarah.johnson@acme.com on this")
	assert.Contains(t, e.People, "sarah.johnson@acme.com")
}

func TestExtractDepartments(t *testing.T) {
	e := ExtractEntities("How big is engineering compared to marketing?")
	assert.Contains(t, e.Departments, "engineering")
	assert.Contains(t, e.Departments, "marketing")
}

func TestHRMentionMapsToHumanResources(t *testing.T) {
	e := ExtractEntities("ask hr about the handbook")
	assert.Contains(t, e.Departments, "human resources")
	assert.Contains(t, e.DocumentTypes, "handbook")
}

func TestExtractSkillsAndLocations(t *testing.T) {
	e := ExtractEntities("Find someone with project management experience in new york")
	assert.Contains(t, e.Skills, "project management")
	assert.Contains(t, e.Locations, "new york")
}

func TestTimeframeHistoricalWinsOverCurrent(t *testing.T) {
	e := ExtractEntities("Who worked on this last quarter and who owns it now?")
	assert.Equal(t, "historical", e.Timeframe)
}

func TestTimeframeCurrent(t *testing.T) {
	e := ExtractEntities("Who currently owns the billing system?")
	assert.Equal(t, "current", e.Timeframe)
}

func TestTimeframeUnspecified(t *testing.T) {
	e := ExtractEntities("Who owns the billing system?")
	assert.Equal(t, "", e.Timeframe)
}

func TestProjectTypeFirstMatchWins(t *testing.T) {
	e := ExtractEntities("Is this a technical or creative project?")
	assert.Equal(t, "technical", e.ProjectType)
}
