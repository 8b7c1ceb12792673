// Package personality holds the static enneagram compatibility model used by
// the directory and context services. The nine profiles are fixed content;
// there is no persistence behind them.
package personality

// Profile describes one enneagram type and its affinity lists.
//
// WorksBestWith and ChallengesWith reference other type codes and are not
// symmetric: type A listing B does not imply B lists A. The source material
// the lists were taken from is asymmetric and the pairwise scorer relies on
// reading only the first member's lists, so the asymmetry is preserved here.
type Profile struct {
	Code           string   `json:"code"`
	DisplayName    string   `json:"display_name"`
	Strengths      []string `json:"strengths"`
	Challenges     []string `json:"challenges"`
	Motivations    []string `json:"motivations"`
	Communication  string   `json:"communication"`
	WorksBestWith  []string `json:"works_best_with"`
	ChallengesWith []string `json:"challenges_with"`
}

var profiles = map[string]*Profile{
	"1": {
		Code:        "1",
		DisplayName: "The Reformer",
		Strengths:   []string{"Principled and ethical", "High quality standards", "Reliable and responsible"},
		Challenges:  []string{"Can be overly critical", "Struggles to delegate imperfect work", "Impatient with sloppiness"},
		Motivations: []string{"Doing things correctly", "Improving processes", "Integrity"},
		Communication: "Be precise and well-prepared. Acknowledge their standards and frame " +
			"feedback around improvement rather than fault.",
		WorksBestWith:  []string{"2", "7", "9"},
		ChallengesWith: []string{"1", "4", "8"},
	},
	"2": {
		Code:        "2",
		DisplayName: "The Helper",
		Strengths:   []string{"Warm and supportive", "Builds strong relationships", "Anticipates others' needs"},
		Challenges:  []string{"Neglects own needs", "Can become resentful when unappreciated", "Avoids direct conflict"},
		Motivations: []string{"Being needed", "Appreciation", "Connection with others"},
		Communication: "Lead with personal warmth and recognize their contributions explicitly " +
			"before moving to business.",
		WorksBestWith:  []string{"1", "4", "8"},
		ChallengesWith: []string{"5", "8"},
	},
	"3": {
		Code:        "3",
		DisplayName: "The Achiever",
		Strengths:   []string{"Driven and efficient", "Adaptable under pressure", "Inspires teams toward goals"},
		Challenges:  []string{"Can prioritize image over substance", "Impatient with slow progress", "Workaholic tendencies"},
		Motivations: []string{"Success and recognition", "Measurable results", "Advancement"},
		Communication: "Be concise and outcome-focused. Tie requests to goals and give them " +
			"visible credit for wins.",
		WorksBestWith:  []string{"6", "9", "1"},
		ChallengesWith: []string{"3", "7"},
	},
	"4": {
		Code:        "4",
		DisplayName: "The Individualist",
		Strengths:   []string{"Creative and original", "Emotionally perceptive", "Comfortable with depth and nuance"},
		Challenges:  []string{"Sensitive to criticism", "Prone to moodiness", "Can withdraw when misunderstood"},
		Motivations: []string{"Authenticity", "Meaningful work", "Self-expression"},
		Communication: "Avoid generic praise; engage with the specifics of their work and give " +
			"them room for individual approaches.",
		WorksBestWith:  []string{"5", "9", "2"},
		ChallengesWith: []string{"3", "4"},
	},
	"5": {
		Code:        "5",
		DisplayName: "The Investigator",
		Strengths:   []string{"Analytical and objective", "Deep domain expertise", "Calm in a crisis"},
		Challenges:  []string{"Withholds information and time", "Detached from team emotions", "Slow to commit"},
		Motivations: []string{"Understanding systems", "Competence", "Autonomy"},
		Communication: "Send material ahead of meetings, respect their time boundaries, and " +
			"let them think before demanding answers.",
		WorksBestWith:  []string{"1", "8", "3"},
		ChallengesWith: []string{"2", "7"},
	},
	"6": {
		Code:        "6",
		DisplayName: "The Loyalist",
		Strengths:   []string{"Committed and dependable", "Excellent risk assessment", "Team-oriented"},
		Challenges:  []string{"Anxious under uncertainty", "Can be skeptical of authority", "Worst-case thinking"},
		Motivations: []string{"Security and stability", "Trustworthy leadership", "Clear expectations"},
		Communication: "Be consistent and transparent. Explain the reasoning behind decisions " +
			"and follow through on commitments.",
		WorksBestWith:  []string{"9", "1", "2"},
		ChallengesWith: []string{"3", "8"},
	},
	"7": {
		Code:        "7",
		DisplayName: "The Enthusiast",
		Strengths:   []string{"Energetic and optimistic", "Generates ideas quickly", "Rallies people around possibilities"},
		Challenges:  []string{"Scattered focus", "Avoids painful topics", "Overcommits"},
		Motivations: []string{"Variety and stimulation", "Freedom", "Positive experiences"},
		Communication: "Keep it engaging and future-oriented, but pin down concrete next steps " +
			"before the conversation ends.",
		WorksBestWith:  []string{"5", "9", "3"},
		ChallengesWith: []string{"1", "6"},
	},
	"8": {
		Code:        "8",
		DisplayName: "The Challenger",
		Strengths:   []string{"Decisive and direct", "Protects the team", "Takes charge in ambiguity"},
		Challenges:  []string{"Can steamroll quieter voices", "Confrontational style", "Distrusts perceived weakness"},
		Motivations: []string{"Control over their domain", "Justice", "Strength"},
		Communication: "Be direct and stand your ground respectfully. Do not hedge; they read " +
			"hedging as evasion.",
		WorksBestWith:  []string{"2", "9"},
		ChallengesWith: []string{"8", "5", "1"},
	},
	"9": {
		Code:        "9",
		DisplayName: "The Peacemaker",
		Strengths:   []string{"Steady and accepting", "Natural mediator", "Sees all sides of a conflict"},
		Challenges:  []string{"Avoids conflict until it festers", "Procrastinates on priorities", "Hard to read positions"},
		Motivations: []string{"Harmony", "Inner stability", "Belonging"},
		Communication: "Ask for their opinion explicitly and wait for it; give deadlines gently " +
			"but concretely.",
		WorksBestWith:  []string{"1", "2", "3"},
		ChallengesWith: []string{"4", "8"},
	},
}

// ProfileFor returns the static profile for a type code, or nil when the code
// is not one of "1".."9". Pure lookup, no failure path beyond not-found.
func ProfileFor(code string) *Profile {
	return profiles[code]
}

// Codes returns the nine canonical type codes in numeric order.
func Codes() []string {
	return []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
}

// PairRelation classifies how two profiles interact.
type PairRelation int

const (
	RelationNeutral PairRelation = iota
	RelationCompatible
	RelationConflicting
)

// Classify reads only the first profile's affinity lists; the result for
// (a, b) may differ from (b, a) because the lists are asymmetric.
func Classify(a, b *Profile) PairRelation {
	for _, code := range a.WorksBestWith {
		if code == b.Code {
			return RelationCompatible
		}
	}
	for _, code := range a.ChallengesWith {
		if code == b.Code {
			return RelationConflicting
		}
	}
	return RelationNeutral
}
