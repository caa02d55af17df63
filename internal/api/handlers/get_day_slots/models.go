package get_day_slots

import (
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/get_day_slots"
)

// BookedIntervalResponse is one occupied stretch of the day.
type BookedIntervalResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Status    string `json:"status"`    // "pending" or "approved"
}

// DaySlotsResponse is the schedule of one space on one date.
type DaySlotsResponse struct {
	SpaceID   int64                    `json:"spaceId"`
	Date      string                   `json:"date"` // "2026-09-10"
	Blocked   bool                     `json:"blocked"`
	Intervals []BookedIntervalResponse `json:"intervals"`
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *usecase.Response) *DaySlotsResponse {
	intervals := make([]BookedIntervalResponse, 0, len(resp.Intervals))
	for _, iv := range resp.Intervals {
		intervals = append(intervals, BookedIntervalResponse{
			StartTime: iv.StartTime.String(),
			EndTime:   iv.EndTime.String(),
			Status:    iv.Status,
		})
	}

	return &DaySlotsResponse{
		SpaceID:   resp.SpaceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Blocked:   resp.Blocked,
		Intervals: intervals,
	}
}
