package personality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileForAllCodes(t *testing.T) {
	valid := map[string]bool{}
	for _, c := range Codes() {
		valid[c] = true
	}

	for _, code := range Codes() {
		profile := ProfileFor(code)
		require.NotNil(t, profile, "code %s", code)
		assert.Equal(t, code, profile.Code)
		assert.NotEmpty(t, profile.DisplayName)
		assert.NotEmpty(t, profile.Strengths)
		assert.NotEmpty(t, profile.Challenges)
		assert.NotEmpty(t, profile.Communication)

		require.NotEmpty(t, profile.WorksBestWith)
		for _, other := range profile.WorksBestWith {
			assert.True(t, valid[other], "works-best code %s of type %s", other, code)
			assert.NotEqual(t, code, other, "type %s lists itself as works-best", code)
		}
		require.NotEmpty(t, profile.ChallengesWith)
		for _, other := range profile.ChallengesWith {
			assert.True(t, valid[other], "challenges code %s of type %s", other, code)
		}
	}
}

func TestProfileForUnknownCode(t *testing.T) {
	assert.Nil(t, ProfileFor("0"))
	assert.Nil(t, ProfileFor("10"))
	assert.Nil(t, ProfileFor(""))
	assert.Nil(t, ProfileFor("reformer"))
}

func TestTypeOneClashesWithItself(t *testing.T) {
	one := ProfileFor("1")
	require.NotNil(t, one)
	assert.Contains(t, one.ChallengesWith, "1")
}

func TestClassifyReadsFirstProfileOnly(t *testing.T) {
	one := ProfileFor("1")
	two := ProfileFor("2")

	// 1 lists 2 as works-best.
	assert.Equal(t, RelationCompatible, Classify(one, two))

	// Same-type pair of ones is conflicting.
	assert.Equal(t, RelationConflicting, Classify(one, one))
}

func TestClassifyAsymmetry(t *testing.T) {
	// 7 lists 3 as works-best, but 3 does not list 7.
	seven := ProfileFor("7")
	three := ProfileFor("3")
	assert.Equal(t, RelationCompatible, Classify(seven, three))
	assert.NotEqual(t, RelationCompatible, Classify(three, seven))
}
