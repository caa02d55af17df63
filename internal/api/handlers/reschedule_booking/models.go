package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
)

// RescheduleBookingRequest is the HTTP request model.
type RescheduleBookingRequest struct {
	Date      string `json:"date"`      // "2026-09-12"
	StartTime string `json:"startTime"` // "14:00"
	EndTime   string `json:"endTime"`   // "16:00"
}

// ToServiceRequest parses the wire fields and builds the service
// request.
func (r *RescheduleBookingRequest) ToServiceRequest(bookingID int64, caller models.Caller) (*models.RescheduleBookingRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	return &models.RescheduleBookingRequest{
		BookingID: bookingID,
		Caller:    caller,
		Date:      date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}, nil
}
