package create_booking

import (
	"fmt"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

// validateRequest checks the request fields that need no repository
// access.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ExpectedCount < domain.MinExpectedCount {
		return fmt.Errorf("%w: expectedCount must be at least %d", ErrInvalidInput, domain.MinExpectedCount)
	}

	if req.Purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	return validateTimeRange(req)
}

// validateTimeRange checks the interval shape: the end strictly after
// the start and a sane minimum duration.
func validateTimeRange(req *Request) error {
	if !req.EndTime.IsAfter(req.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidTimeRange)
	}

	startMins, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	endMins, err := req.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	if endMins-startMins < domain.MinBookingDurationMins {
		return fmt.Errorf("%w: booking must last at least %d minutes",
			ErrInvalidTimeRange, domain.MinBookingDurationMins)
	}

	return nil
}

// validateDate rejects past dates and dates beyond the advance window.
func validateDate(requestDate, now time.Time) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, 0, domain.MaxAdvanceBookingDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrInvalidDate, domain.MaxAdvanceBookingDays)
	}

	return nil
}
