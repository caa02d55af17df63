package recommend

import "fmt"

// BannerKind tags the message accompanying a form state.
type BannerKind string

const (
	BannerNone      BannerKind = "none"
	BannerRecommend BannerKind = "recommend"
	BannerNoFit     BannerKind = "no_fit"
)

// OptionState is the rendered state of one selectable candidate.
type OptionState struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
}

// FormState is everything a form needs to reflect one evaluation:
// per-candidate option states, an optional banner and the submit gate.
type FormState struct {
	Options       []OptionState `json:"options"`
	BannerKind    BannerKind    `json:"bannerKind"`
	BannerText    string        `json:"bannerText,omitempty"`
	SubmitEnabled bool          `json:"submitEnabled"`
	SubmitLabel   string        `json:"submitLabel"`
}

const (
	submitLabelDefault = "Request booking"
	submitLabelNoFit   = "No space available"
)

// Render maps an evaluation result onto form updates. Like Evaluate it
// is pure: the caller applies the returned state to whatever widgets
// it owns.
//
// Ineligible candidates are disabled and relabelled as too small;
// eligible ones keep a plain capacity label. On a best fit the winner
// is selected and a recommendation banner is set. On no fit every
// option is disabled, the selection is cleared, a blocking diagnostic
// names the required count and submission is gated off.
func Render(result Result, candidates []Candidate) FormState {
	state := FormState{
		Options:       make([]OptionState, len(candidates)),
		BannerKind:    BannerNone,
		SubmitEnabled: true,
		SubmitLabel:   submitLabelDefault,
	}

	for i, c := range candidates {
		opt := OptionState{
			ID:    c.ID,
			Label: fmt.Sprintf("%s (capacity %d)", c.Name, c.Capacity),
		}

		if result.Kind != KindEmpty && c.Capacity < result.RequiredCount {
			opt.Disabled = true
			opt.Label = fmt.Sprintf("%s (capacity %d, too small)", c.Name, c.Capacity)
		}

		if result.Kind == KindBestFit && c.ID == result.Best.ID {
			opt.Selected = true
		}

		state.Options[i] = opt
	}

	switch result.Kind {
	case KindBestFit:
		state.BannerKind = BannerRecommend
		state.BannerText = fmt.Sprintf("Recommended: %s (capacity %d, %d spare seats)",
			result.Best.Name, result.Best.Capacity, result.Surplus)
	case KindNoFit:
		state.BannerKind = BannerNoFit
		state.BannerText = fmt.Sprintf("No space can hold %d people", result.RequiredCount)
		state.SubmitEnabled = false
		state.SubmitLabel = submitLabelNoFit
	}

	return state
}
