// Package intent classifies free-text HR questions into a fixed set of
// intents and extracts structured entities. Classification is keyword
// counting, not an ML model: it exists to decide which data the context
// builder needs to fetch before the LLM call.
package intent

import "strings"

// Intent is the primary intent of a user query.
type Intent string

const (
	IntentTeamComposition    Intent = "team_composition"
	IntentDocumentSearch     Intent = "document_search"
	IntentConflictResolution Intent = "conflict_resolution"
	IntentDelegation         Intent = "delegation"
	IntentEmployeeLookup     Intent = "employee_lookup"
	IntentDepartmentOverview Intent = "department_overview"
	// IntentMixed is the fallback when no keyword matches; it is never a
	// scored category.
	IntentMixed Intent = "mixed"
)

// QueryType flags which data categories the context builder must fetch.
type QueryType struct {
	NeedsPeopleData       bool `json:"needs_people_data"`
	NeedsDocumentData     bool `json:"needs_document_data"`
	NeedsRelationshipData bool `json:"needs_relationship_data"`
	NeedsEnneagramData    bool `json:"needs_enneagram_data"`
}

// Result is the ephemeral per-query classification output.
type Result struct {
	PrimaryIntent Intent    `json:"primary_intent"`
	Confidence    float64   `json:"confidence"`
	Entities      Entities  `json:"entities"`
	QueryType     QueryType `json:"query_type"`
}

type keywordRule struct {
	intent   Intent
	keywords []string
}

// Detector scores queries against fixed keyword tables.
type Detector struct {
	rules []keywordRule
}

// NewDetector creates a detector with the built-in rule tables.
//
// Rule order matters: ties on the raw keyword count resolve to the rule seen
// first in this slice. Do not reorder without adjusting the tie-break tests.
func NewDetector() *Detector {
	return &Detector{
		rules: []keywordRule{
			{
				intent: IntentTeamComposition,
				keywords: []string{
					"team", "who should", "best person", "lead",
					"collaborate", "work together", "work with",
					"assign", "staff", "project team",
				},
			},
			{
				intent: IntentDocumentSearch,
				keywords: []string{
					"document", "file", "policy", "report",
					"paperwork", "contract", "presentation", "spec",
				},
			},
			{
				intent: IntentConflictResolution,
				keywords: []string{
					"conflict", "disagreement", "tension",
					"not getting along", "dispute", "friction", "mediate",
				},
			},
			{
				intent: IntentDelegation,
				keywords: []string{
					"delegate", "delegation", "hand off", "handoff",
					"take over", "offload", "reassign",
				},
			},
			{
				intent: IntentEmployeeLookup,
				keywords: []string{
					"who is", "contact", "email for", "phone number",
					"profile", "tell me about", "reach",
				},
			},
			{
				intent: IntentDepartmentOverview,
				keywords: []string{
					"department", "org chart", "overview", "headcount",
					"how many people", "structure", "division",
				},
			},
		},
	}
}

// Detect classifies the input. It never fails: text with no keyword matches
// yields IntentMixed with confidence 0 and empty entity lists.
func (d *Detector) Detect(text string) Result {
	lower := strings.ToLower(text)

	primary := IntentMixed
	maxScore := 0
	total := 0
	for _, rule := range d.rules {
		score := 0
		for _, kw := range rule.keywords {
			score += strings.Count(lower, kw)
		}
		total += score
		// Strict > keeps the first-seen rule on ties.
		if score > maxScore {
			maxScore = score
			primary = rule.intent
		}
	}

	confidence := 0.0
	if total > 0 {
		confidence = float64(maxScore) / float64(total)
	}

	result := Result{
		PrimaryIntent: primary,
		Confidence:    confidence,
		Entities:      ExtractEntities(text),
		QueryType:     baseQueryType(primary),
	}
	applyQueryTypeOverrides(&result.QueryType, lower)
	return result
}

// baseQueryType maps a primary intent to the data categories it implies.
func baseQueryType(intent Intent) QueryType {
	switch intent {
	case IntentTeamComposition:
		return QueryType{NeedsPeopleData: true, NeedsRelationshipData: true, NeedsEnneagramData: true}
	case IntentDocumentSearch:
		return QueryType{NeedsDocumentData: true}
	case IntentConflictResolution:
		return QueryType{NeedsPeopleData: true, NeedsEnneagramData: true}
	case IntentDelegation:
		return QueryType{NeedsPeopleData: true, NeedsRelationshipData: true}
	case IntentEmployeeLookup:
		return QueryType{NeedsPeopleData: true}
	case IntentDepartmentOverview:
		return QueryType{NeedsPeopleData: true, NeedsRelationshipData: true}
	default:
		// Mixed queries still get people data so the assistant has something
		// to work with.
		return QueryType{NeedsPeopleData: true}
	}
}

// applyQueryTypeOverrides ORs in flags triggered by direct keyword mentions,
// regardless of the primary intent.
func applyQueryTypeOverrides(qt *QueryType, lower string) {
	for _, kw := range []string{"manager", "hierarchy", "reports to", "direct report", "chain of command"} {
		if strings.Contains(lower, kw) {
			qt.NeedsRelationshipData = true
			break
		}
	}
	for _, kw := range []string{"enneagram", "personality", "compatibility", "compatible"} {
		if strings.Contains(lower, kw) {
			qt.NeedsEnneagramData = true
			break
		}
	}
	for _, kw := range []string{"document", "file", "policy"} {
		if strings.Contains(lower, kw) {
			qt.NeedsDocumentData = true
			break
		}
	}
}
