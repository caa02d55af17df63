package cancel_booking

import (
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
)

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest builds the service request for the authenticated
// caller.
func (r *CancelBookingRequest) ToServiceRequest(bookingID int64, caller models.Caller) *models.CancelBookingRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.CancelBookingRequest{
		BookingID: bookingID,
		Caller:    caller,
		Reason:    reason,
	}
}
