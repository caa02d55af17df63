package recommend_space

import (
	"net/http"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/recommend_space"
)

type Handler struct {
	useCase RecommendUseCase
	logger  Logger
}

func NewHandler(useCase RecommendUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/recommendation?count=40
//
// The count parameter is passed through raw: blank or non-numeric
// input is a valid "no requirement yet" state, never a 400.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	countRaw := r.URL.Query().Get("count")

	resp, err := h.useCase.Execute(r.Context(), &usecase.Request{RequiredCountRaw: countRaw})
	if err != nil {
		h.logger.Error("GET /spaces/recommendation - Failed to evaluate: count=%q, error=%v", countRaw, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spaces/recommendation - count=%q kind=%s", countRaw, resp.Kind)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
