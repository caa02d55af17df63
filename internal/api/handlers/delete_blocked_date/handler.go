package delete_blocked_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/middleware"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces/models"
)

const (
	msgInvalidBlockID = "invalid blocked date ID"
	msgUnauthorized   = "authentication required"
	msgForbidden      = "staff access required"
	msgNotFound       = "blocked date not found"
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

// Handle DELETE /api/v1/admin/blocked-dates/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /admin/blocked-dates/{id} - No user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	vars := mux.Vars(r)
	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-dates/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	err = h.service.RemoveBlock(r.Context(), &models.RemoveBlockRequest{
		Caller:  models.Caller{UserID: userID, Role: role},
		BlockID: blockID,
	})
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/blocked-dates/{id} - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, spaces.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocked-dates/{id} - Not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-dates/{id} - Failed: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-dates/{id} - block_id=%d, user_id=%d", blockID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
