package recommend_space

import (
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/recommend"
	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/recommend_space"
)

// RecommendedSpaceResponse is the winning candidate in a best-fit
// recommendation.
type RecommendedSpaceResponse struct {
	SpaceID  int64  `json:"spaceId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Surplus  int    `json:"surplus"`
}

// RecommendationResponse is the HTTP response: the outcome kind, the
// parsed headcount, the best candidate when one exists, and the form
// state the frontend applies to its widgets.
type RecommendationResponse struct {
	Kind          string                    `json:"kind"` // "empty", "best_fit" or "no_fit"
	RequiredCount int                       `json:"requiredCount"`
	Best          *RecommendedSpaceResponse `json:"best,omitempty"`
	Form          recommend.FormState       `json:"form"`
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *usecase.Response) *RecommendationResponse {
	out := &RecommendationResponse{
		Kind:          resp.Kind.String(),
		RequiredCount: resp.RequiredCount,
		Form:          resp.Form,
	}

	if resp.Best != nil {
		out.Best = &RecommendedSpaceResponse{
			SpaceID:  resp.Best.SpaceID,
			Name:     resp.Best.Name,
			Capacity: resp.Best.Capacity,
			Surplus:  resp.Best.Surplus,
		}
	}

	return out
}
