package get_day_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

func booking(start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}

func TestToIntervals_OnlyActiveSortedByStart(t *testing.T) {
	bookings := []*domain.Booking{
		booking("14:00", "16:00", domain.StatusApproved),
		booking("09:00", "10:30", domain.StatusPending),
		booking("11:00", "12:00", domain.StatusCancelled),
		booking("10:30", "11:30", domain.StatusRejected),
	}

	intervals := toIntervals(bookings)

	require.Len(t, intervals, 2, "cancelled and rejected bookings do not occupy slots")
	assert.Equal(t, types.TimeString("09:00"), intervals[0].StartTime)
	assert.Equal(t, "pending", intervals[0].Status)
	assert.Equal(t, types.TimeString("14:00"), intervals[1].StartTime)
	assert.Equal(t, "approved", intervals[1].Status)
}

func TestToIntervals_Empty(t *testing.T) {
	assert.Empty(t, toIntervals(nil))
}
