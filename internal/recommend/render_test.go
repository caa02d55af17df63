package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EmptyDisablesNothing(t *testing.T) {
	cands := candidates(30, 50)
	state := Render(Evaluate(Query{RequiredCount: 0}, cands), cands)

	require.Len(t, state.Options, 2)
	for _, opt := range state.Options {
		assert.False(t, opt.Disabled)
		assert.False(t, opt.Selected)
	}
	assert.Equal(t, BannerNone, state.BannerKind)
	assert.True(t, state.SubmitEnabled)
}

func TestRender_BestFitSelectsWinnerAndDisablesSmall(t *testing.T) {
	cands := candidates(30, 50, 45)
	state := Render(Evaluate(Query{RequiredCount: 40}, cands), cands)

	require.Len(t, state.Options, 3)

	// A(30) is too small: disabled and relabelled.
	assert.True(t, state.Options[0].Disabled)
	assert.Contains(t, state.Options[0].Label, "too small")

	// B(50) eligible but not selected.
	assert.False(t, state.Options[1].Disabled)
	assert.False(t, state.Options[1].Selected)

	// C(45) is the best fit.
	assert.True(t, state.Options[2].Selected)
	assert.Equal(t, "C (capacity 45)", state.Options[2].Label)

	assert.Equal(t, BannerRecommend, state.BannerKind)
	assert.Contains(t, state.BannerText, "C")
	assert.True(t, state.SubmitEnabled)
}

func TestRender_NoFitGatesSubmission(t *testing.T) {
	cands := candidates(30, 20)
	state := Render(Evaluate(Query{RequiredCount: 100}, cands), cands)

	for _, opt := range state.Options {
		assert.True(t, opt.Disabled)
		assert.False(t, opt.Selected)
	}
	assert.Equal(t, BannerNoFit, state.BannerKind)
	assert.Contains(t, state.BannerText, "100")
	assert.False(t, state.SubmitEnabled)
	assert.Equal(t, "No space available", state.SubmitLabel)
}
