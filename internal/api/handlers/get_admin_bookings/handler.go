package get_admin_bookings

import (
	"errors"
	"net/http"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/middleware"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "invalid filter parameters"
	msgUnauthorized  = "authentication required"
	msgForbidden     = "staff access required"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings?spaceId=3&from=2026-09-01&to=2026-09-30&status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/bookings - No user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	req, err := parseQuery(r.URL.Query(), models.Caller{UserID: userID, Role: role})
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	resp, err := h.service.GetAllWithFilter(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - user_id=%d, bookings=%d", userID, len(resp.Bookings))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
