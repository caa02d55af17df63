package recommend_space

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/recommend"
)

// UseCase recommends the best-fitting space for an expected headcount.
type UseCase struct {
	spaceRepo SpaceRepository
	logger    Logger
}

// NewUseCase creates the recommendation use case.
func NewUseCase(spaceRepo SpaceRepository, logger Logger) *UseCase {
	return &UseCase{
		spaceRepo: spaceRepo,
		logger:    logger,
	}
}

// Execute loads the active spaces as candidates, evaluates the
// requirement against them and renders the resulting form state.
// Evaluation is synchronous and recomputed from scratch on every call;
// nothing is carried over between requests.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	requiredCount := recommend.ParseRequiredCount(req.RequiredCountRaw)

	spaces, err := uc.spaceRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("RecommendSpace: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: failed to list spaces: %v", ErrInternal, err)
	}

	candidates := toCandidates(spaces)
	result := recommend.Evaluate(recommend.Query{RequiredCount: requiredCount}, candidates)
	form := recommend.Render(result, candidates)

	resp := &Response{
		Kind:          result.Kind,
		RequiredCount: requiredCount,
		Form:          form,
	}

	switch result.Kind {
	case recommend.KindBestFit:
		spaceID, err := strconv.ParseInt(result.Best.ID, 10, 64)
		if err != nil {
			uc.logger.Error("RecommendSpace: bad candidate id %q: %v", result.Best.ID, err)
			return nil, fmt.Errorf("%w: bad candidate id: %v", ErrInternal, err)
		}
		resp.Best = &RecommendedSpace{
			SpaceID:  spaceID,
			Name:     result.Best.Name,
			Capacity: result.Best.Capacity,
			Surplus:  result.Surplus,
		}
		uc.logger.Info("RecommendSpace: count=%d best_fit=%s surplus=%d of %d candidates",
			requiredCount, result.Best.Name, result.Surplus, len(candidates))

	case recommend.KindNoFit:
		uc.logger.Info("RecommendSpace: count=%d no fit among %d candidates",
			requiredCount, len(candidates))

	default:
		uc.logger.Info("RecommendSpace: empty requirement, nothing to recommend")
	}

	return resp, nil
}

func toCandidates(spaces []*domain.Space) []recommend.Candidate {
	candidates := make([]recommend.Candidate, len(spaces))
	for i, s := range spaces {
		candidates[i] = recommend.Candidate{
			ID:       strconv.FormatInt(s.ID, 10),
			Name:     s.Name,
			Capacity: s.Capacity,
		}
	}
	return candidates
}
