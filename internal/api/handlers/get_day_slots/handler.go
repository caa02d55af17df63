package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/get_day_slots"
)

const (
	msgInvalidSpaceID = "invalid space ID"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgNotFound       = "space not found"
)

type Handler struct {
	useCase DaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase DaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/day-slots?date=2026-09-10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceIDStr := vars["spaceId"]

	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/day-slots - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/day-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &usecase.Request{SpaceID: spaceID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/day-slots - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/day-slots - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /spaces/{id}/day-slots - Failed: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id}/day-slots - space_id=%d date=%s intervals=%d",
		spaceID, date.Format(domain.DateFormat), len(resp.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
