package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

func validRequest() *Request {
	return &Request{
		UserID:        7,
		SpaceID:       1,
		Date:          time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("12:00"),
		ExpectedCount: 40,
		Purpose:       "Department seminar",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"valid", func(r *Request) {}, nil},
		{"missing user", func(r *Request) { r.UserID = 0 }, ErrInvalidInput},
		{"missing space", func(r *Request) { r.SpaceID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"zero count", func(r *Request) { r.ExpectedCount = 0 }, ErrInvalidInput},
		{"empty purpose", func(r *Request) { r.Purpose = "" }, ErrInvalidInput},
		{"end before start", func(r *Request) {
			r.StartTime = types.TimeString("12:00")
			r.EndTime = types.TimeString("10:00")
		}, ErrInvalidTimeRange},
		{"end equals start", func(r *Request) {
			r.EndTime = r.StartTime
		}, ErrInvalidTimeRange},
		{"too short", func(r *Request) {
			r.StartTime = types.TimeString("10:00")
			r.EndTime = types.TimeString("10:10")
		}, ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)

	// Same day is fine even though the clock has moved past midnight.
	assert.NoError(t, validateDate(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), now))
	assert.NoError(t, validateDate(now.AddDate(0, 0, 30), now))

	assert.ErrorIs(t, validateDate(now.AddDate(0, 0, -1), now), ErrInvalidDate)
	assert.ErrorIs(t, validateDate(now.AddDate(0, 0, 366), now), ErrInvalidDate)
}
