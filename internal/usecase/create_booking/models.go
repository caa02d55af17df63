package create_booking

import (
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// Request is the booking request after HTTP-level parsing.
type Request struct {
	UserID        int64
	SpaceID       int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ExpectedCount int
	Purpose       string
}

// Response is the created booking.
type Response struct {
	ID            int64
	SpaceID       int64
	SpaceName     string
	UserID        int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ExpectedCount int
	Purpose       string
	Status        string
	CreatedAt     time.Time
}
