package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/middleware"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthorized       = "authentication required"
	msgForbidden          = "staff access required"
	msgSpaceNotFound      = "space not found"
	msgAlreadyBlocked     = "date is already blocked"
	msgInvalidInput       = "invalid date or reason"
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

// Handle POST /api/v1/admin/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/blocked-dates - No user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	var req CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(models.Caller{UserID: userID, Role: role})
	if err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Malformed fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	resp, err := h.service.AddBlock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("POST /admin/blocked-dates - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("POST /admin/blocked-dates - Space not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrAlreadyBlocked):
			h.logger.Warn("POST /admin/blocked-dates - Already blocked: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocked-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blocked-dates - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocked-dates - block_id=%d, user_id=%d, date=%s", resp.ID, userID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
