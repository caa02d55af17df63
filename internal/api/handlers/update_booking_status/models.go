package update_booking_status

import (
	"errors"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
)

var errUnknownAction = errors.New("unknown action")

// UpdateStatusRequest is the HTTP request model. Action is "approve"
// or "reject"; Reason is required for rejection.
type UpdateStatusRequest struct {
	Action string  `json:"action"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest builds the staff decision request.
func (r *UpdateStatusRequest) ToServiceRequest(bookingID int64, caller models.Caller) (*models.DecideBookingRequest, error) {
	var approve bool
	switch r.Action {
	case "approve":
		approve = true
	case "reject":
		approve = false
	default:
		return nil, errUnknownAction
	}

	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.DecideBookingRequest{
		BookingID: bookingID,
		Caller:    caller,
		Approve:   approve,
		Reason:    reason,
	}, nil
}
