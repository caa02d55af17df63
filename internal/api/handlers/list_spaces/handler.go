package list_spaces

import (
	"net/http"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /spaces - Failed to list spaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spaces - Returned %d spaces", len(resp.Spaces))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
