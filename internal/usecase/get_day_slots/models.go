package get_day_slots

import (
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// Request asks for one space's schedule on one date.
type Request struct {
	SpaceID int64
	Date    time.Time
}

// BookedInterval is one occupied stretch of the day.
type BookedInterval struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string // pending or approved
}

// Response is the day schedule: occupied intervals in start order,
// plus whether the whole date is administratively blocked.
type Response struct {
	SpaceID   int64
	Date      time.Time
	Blocked   bool
	Intervals []BookedInterval
}
