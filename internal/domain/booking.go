package domain

import (
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// BookingStatus represents the status of a booking request.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a request to reserve a space for an event.
type Booking struct {
	ID            int64
	SpaceID       int64
	UserID        int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ExpectedCount int
	Purpose       string
	Status        BookingStatus

	// Denormalized for history views: the space may be renamed or
	// deactivated after the booking is made.
	SpaceName     string
	SpaceCapacity int

	// Pending bookings not decided by this moment are auto-rejected
	// by the expiry sweep, which sets AutoExpired.
	ApprovalDeadline time.Time
	AutoExpired      bool

	DecidedBy          *int64 // staff member who approved or rejected
	RejectionReason    *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
// Pending and approved bookings both block conflicting requests.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeCancelled returns true if the requester may still cancel:
// the event has not passed and no final decision ended the booking.
func (b *Booking) CanBeCancelled(today time.Time) bool {
	if !b.IsActive() {
		return false
	}
	date := b.BookingDate
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	todayOnly := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return !dateOnly.Before(todayOnly)
}

// IsOverdue returns true if the booking is still pending past its
// approval deadline and has not been expired yet.
func (b *Booking) IsOverdue(now time.Time) bool {
	return b.Status == StatusPending && !b.AutoExpired && b.ApprovalDeadline.Before(now)
}

// CanBeDecided returns true if staff may approve or reject the booking.
func (b *Booking) CanBeDecided() bool {
	return b.Status == StatusPending
}

// IsCancelled returns true if the requester withdrew the booking.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps reports whether the booking's interval strictly overlaps
// [start, end). Touching boundaries do not count as a conflict.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// BookingsFilter narrows admin booking listings.
type BookingsFilter struct {
	SpaceID         *int64         // nil = all spaces
	StartDate       *time.Time     // nil = no lower bound
	EndDate         *time.Time     // nil = no upper bound
	Status          *BookingStatus // nil = any status
	IncludeInactive bool           // include rejected and cancelled
}
