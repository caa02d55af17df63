package get_day_slots

import (
	"sort"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

// toIntervals maps active bookings onto occupied intervals in start
// order. Rejected and cancelled bookings do not occupy the day even if
// the repository hands them over.
func toIntervals(bookings []*domain.Booking) []BookedInterval {
	intervals := make([]BookedInterval, 0, len(bookings))

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		intervals = append(intervals, BookedInterval{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    string(b.Status),
		})
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].StartTime.IsBefore(intervals[j].StartTime)
	})

	return intervals
}
