package intent

import (
	"regexp"
	"strings"
)

// Entities holds the structured values extracted from a query. People can
// contain both display names and email addresses; consumers must handle both
// identifier shapes in the one list.
type Entities struct {
	People        []string `json:"people"`
	Departments   []string `json:"departments"`
	DocumentTypes []string `json:"document_types"`
	Skills        []string `json:"skills"`
	Locations     []string `json:"locations"`
	// Timeframe is "current", "historical", or "" when unspecified.
	Timeframe   string `json:"timeframe,omitempty"`
	ProjectType string `json:"project_type,omitempty"`
}

var (
	quotedRe     = regexp.MustCompile(`"([^"]+)"`)
	whoIsRe      = regexp.MustCompile(`\b[Ww]ho(?:'s| is)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`)
	possessiveRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)'s\b`)
	// capitalPairRe matches runs of two or more capitalized words. This
	// over-extracts place names like "New York" as people; that imprecision
	// is accepted, downstream lookups simply miss.
	capitalPairRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\b`)
	emailRe       = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	hrRe          = regexp.MustCompile(`\bhr\b`)
)

var departmentVocab = []string{
	"engineering", "marketing", "sales", "design", "product",
	"finance", "human resources", "operations", "legal", "support",
	"customer success",
}

var skillVocab = []string{
	"leadership", "communication", "programming", "data analysis",
	"project management", "recruiting", "negotiation", "writing",
	"budgeting", "analytics",
}

var locationVocab = []string{
	"remote", "new york", "san francisco", "london", "berlin",
	"tokyo", "chicago", "austin", "toronto", "singapore",
}

var documentTypeVocab = []string{
	"report", "policy", "contract", "presentation", "spreadsheet",
	"proposal", "memo", "guide", "handbook", "invoice",
}

var historicalVocab = []string{
	"last year", "last quarter", "last month", "previously",
	"used to", "former", "history", "in the past",
}

var currentVocab = []string{
	"current", "currently", "now", "today", "this week", "right now",
}

var projectTypeVocab = []string{
	"technical", "creative", "strategic", "operational", "research",
}

// ExtractEntities runs the full pattern battery. Name heuristics run against
// the original text because capitalization carries signal; vocabulary
// matchers run case-insensitively.
func ExtractEntities(text string) Entities {
	lower := strings.ToLower(text)

	e := Entities{
		People:        extractNames(text),
		Departments:   matchVocab(lower, departmentVocab),
		DocumentTypes: matchVocab(lower, documentTypeVocab),
		Skills:        matchVocab(lower, skillVocab),
		Locations:     matchVocab(lower, locationVocab),
	}

	if hrRe.MatchString(lower) {
		e.Departments = appendUnique(e.Departments, "human resources")
	}

	// Emails land in the same list as names.
	for _, email := range emailRe.FindAllString(text, -1) {
		e.People = appendUnique(e.People, email)
	}

	for _, kw := range historicalVocab {
		if strings.Contains(lower, kw) {
			e.Timeframe = "historical"
			break
		}
	}
	if e.Timeframe == "" {
		for _, kw := range currentVocab {
			if strings.Contains(lower, kw) {
				e.Timeframe = "current"
				break
			}
		}
	}

	for _, kw := range projectTypeVocab {
		if strings.Contains(lower, kw) {
			e.ProjectType = kw
			break
		}
	}

	return e
}

// extractNames unions four overlapping heuristics: quoted phrases, "who is X"
// phrasing, possessives, and bare capitalized word runs.
func extractNames(text string) []string {
	var names []string

	for _, m := range quotedRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	for _, m := range whoIsRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	for _, m := range possessiveRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	for _, m := range capitalPairRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		out = appendUnique(out, strings.TrimSpace(n))
	}
	return out
}

func matchVocab(lower string, vocab []string) []string {
	var out []string
	for _, term := range vocab {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

func appendUnique(list []string, value string) []string {
	if value == "" {
		return list
	}
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
