// Package recommend picks the best-fitting space for an expected
// headcount: among all spaces large enough, the one with the least
// surplus capacity wins. The package is pure; callers own candidate
// loading and result rendering.
package recommend

import (
	"strconv"
	"strings"
)

// Candidate is a bookable space as seen by the recommender.
// Candidates are immutable for the duration of one evaluation pass.
type Candidate struct {
	ID       string
	Name     string
	Capacity int
}

// Query carries the requirement a candidate must satisfy.
// It is rebuilt from user input on every change, never cached.
type Query struct {
	RequiredCount int
}

// Kind distinguishes the evaluation outcomes.
type Kind int

const (
	// KindEmpty means no requirement was given; nothing to recommend.
	KindEmpty Kind = iota
	// KindBestFit means at least one candidate fits; Best holds the
	// minimum-surplus one.
	KindBestFit
	// KindNoFit means the requirement exceeds every candidate.
	KindNoFit
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBestFit:
		return "best_fit"
	case KindNoFit:
		return "no_fit"
	default:
		return "empty"
	}
}

// Result is the outcome of one evaluation pass.
// Exactly one kind holds per pass; Best and Surplus are only
// meaningful for KindBestFit, RequiredCount for KindBestFit and
// KindNoFit.
type Result struct {
	Kind          Kind
	Best          Candidate
	Surplus       int
	RequiredCount int
}

// Evaluate classifies candidates against the query and selects the
// best fit. It is a pure function of its arguments:
//
//   - RequiredCount <= 0 yields KindEmpty without touching candidates.
//   - Otherwise a single linear pass tracks the eligible candidate
//     (capacity >= RequiredCount) with the minimum surplus. The strict
//     comparison means the earliest-listed candidate wins ties.
//   - No eligible candidate yields KindNoFit. An empty candidate list
//     degenerates to KindNoFit the same way.
func Evaluate(query Query, candidates []Candidate) Result {
	if query.RequiredCount <= 0 {
		return Result{Kind: KindEmpty}
	}

	bestIdx := -1
	bestSurplus := 0

	for i, c := range candidates {
		if c.Capacity < query.RequiredCount {
			continue
		}

		surplus := c.Capacity - query.RequiredCount
		if bestIdx == -1 || surplus < bestSurplus {
			bestIdx = i
			bestSurplus = surplus
		}
	}

	if bestIdx == -1 {
		return Result{
			Kind:          KindNoFit,
			RequiredCount: query.RequiredCount,
		}
	}

	return Result{
		Kind:          KindBestFit,
		Best:          candidates[bestIdx],
		Surplus:       bestSurplus,
		RequiredCount: query.RequiredCount,
	}
}

// Eligible reports whether the candidate satisfies the query.
func Eligible(query Query, c Candidate) bool {
	return c.Capacity >= query.RequiredCount
}

// ParseRequiredCount converts free-text headcount input into a count.
// Missing, non-numeric or negative input degrades to 0 ("no
// requirement") rather than failing: an empty form field is the normal
// starting state, not an error.
func ParseRequiredCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
