package create_booking

import (
	"errors"
	"net/http"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/handlers"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/api/middleware"
	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnauthorized       = "authentication required"
	msgSpaceNotFound      = "space not found"
	msgSpaceNotAvailable  = "space is not available for booking"
	msgCapacityExceeded   = "expected count exceeds space capacity"
	msgDateBlocked        = "date is blocked for this space"
	msgSlotConflict       = "time slot conflicts with an existing booking"
	msgInvalidDate        = "invalid booking date"
	msgInvalidTimeRange   = "invalid booking time range"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - No user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Malformed fields: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, usecase.ErrSpaceNotAvailable):
			h.logger.Warn("POST /bookings - Space not available: space_id=%d", req.SpaceID)
			handlers.RespondConflict(w, msgSpaceNotAvailable)

		case errors.Is(err, usecase.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: space_id=%d, expected_count=%d",
				req.SpaceID, req.ExpectedCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, usecase.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: space_id=%d, date=%s", req.SpaceID, req.Date)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, usecase.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: space_id=%d, date=%s, time=%s-%s",
				req.SpaceID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, usecase.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, usecase.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: time=%s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, space_id=%d",
		resp.ID, userID, resp.SpaceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
