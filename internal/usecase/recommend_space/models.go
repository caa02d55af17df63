package recommend_space

import "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/recommend"

// Request carries the raw headcount input exactly as the user typed it.
// Parsing is part of the use case: non-numeric input means "no
// requirement yet", never a failure.
type Request struct {
	RequiredCountRaw string
}

// RecommendedSpace is the winning candidate in a best-fit response.
type RecommendedSpace struct {
	SpaceID  int64
	Name     string
	Capacity int
	Surplus  int
}

// Response is the evaluation outcome plus the rendered form state the
// caller applies to its widgets.
type Response struct {
	Kind          recommend.Kind
	RequiredCount int
	Best          *RecommendedSpace // set only for a best fit
	Form          recommend.FormState
}
