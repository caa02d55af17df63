package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(caps ...int) []Candidate {
	out := make([]Candidate, len(caps))
	names := []string{"A", "B", "C", "D", "E"}
	for i, c := range caps {
		out[i] = Candidate{ID: names[i], Name: names[i], Capacity: c}
	}
	return out
}

func TestEvaluate_ZeroCountIsEmpty(t *testing.T) {
	result := Evaluate(Query{RequiredCount: 0}, candidates(30, 50, 45))
	assert.Equal(t, KindEmpty, result.Kind)

	// Empty regardless of the candidate set.
	result = Evaluate(Query{RequiredCount: 0}, nil)
	assert.Equal(t, KindEmpty, result.Kind)
}

func TestEvaluate_PicksMinimumSurplus(t *testing.T) {
	// A(30) ineligible; B(50) surplus 10; C(45) surplus 5 -> C wins.
	result := Evaluate(Query{RequiredCount: 40}, candidates(30, 50, 45))

	require.Equal(t, KindBestFit, result.Kind)
	assert.Equal(t, "C", result.Best.ID)
	assert.Equal(t, 5, result.Surplus)
	assert.Equal(t, 40, result.RequiredCount)
}

func TestEvaluate_NoEligibleCandidateIsNoFit(t *testing.T) {
	result := Evaluate(Query{RequiredCount: 40}, candidates(30))

	require.Equal(t, KindNoFit, result.Kind)
	assert.Equal(t, 40, result.RequiredCount)
}

func TestEvaluate_TieBreaksToFirstListed(t *testing.T) {
	// Both have surplus 0; the earlier candidate must win.
	result := Evaluate(Query{RequiredCount: 30}, candidates(30, 30))

	require.Equal(t, KindBestFit, result.Kind)
	assert.Equal(t, "A", result.Best.ID)
	assert.Equal(t, 0, result.Surplus)
}

func TestEvaluate_EmptyCandidateListIsNoFit(t *testing.T) {
	result := Evaluate(Query{RequiredCount: 10}, nil)
	assert.Equal(t, KindNoFit, result.Kind)
}

func TestEvaluate_NoEligibleHasSmallerSurplusThanWinner(t *testing.T) {
	query := Query{RequiredCount: 25}
	cands := candidates(100, 40, 26, 24, 27)

	result := Evaluate(query, cands)
	require.Equal(t, KindBestFit, result.Kind)

	for _, c := range cands {
		if !Eligible(query, c) {
			continue
		}
		assert.GreaterOrEqual(t, c.Capacity-query.RequiredCount, result.Surplus,
			"candidate %s beats the reported best fit", c.ID)
	}
}

func TestEvaluate_IsPure(t *testing.T) {
	query := Query{RequiredCount: 40}
	cands := candidates(30, 50, 45)

	first := Evaluate(query, cands)
	second := Evaluate(query, cands)

	assert.Equal(t, first, second)
}

func TestParseRequiredCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"40", 40},
		{" 12 ", 12},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12.5", 0},
		{"-3", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRequiredCount(tt.input), "input %q", tt.input)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty", KindEmpty.String())
	assert.Equal(t, "best_fit", KindBestFit.String())
	assert.Equal(t, "no_fit", KindNoFit.String())
}
