package get_audit_log

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/middleware"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/audit"
)

const (
	msgInvalidLimit = "invalid limit parameter"
	msgUnauthorized = "authentication required"
	msgForbidden    = "staff access required"
)

type Handler struct {
	service AuditService
	logger  Logger
}

func NewHandler(service AuditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/audit-log?limit=50
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/audit-log - No user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/audit-log - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	resp, err := h.service.ListRecent(r.Context(), audit.Caller{UserID: userID, Role: role}, limit)
	if err != nil {
		switch {
		case errors.Is(err, audit.ErrAccessDenied):
			h.logger.Warn("GET /admin/audit-log - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/audit-log - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/audit-log - user_id=%d, actions=%d", userID, len(resp.Actions))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
