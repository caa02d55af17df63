package models

import (
	"errors"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status string.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// Caller identifies who is asking: the user id from the gateway plus
// the role header value. Access rules live in the service.
type Caller struct {
	UserID int64
	Role   string
}

// IsStaff reports whether the caller holds a staff role.
func (c Caller) IsStaff() bool {
	return domain.IsStaffRole(c.Role)
}

// CancelBookingRequest asks to withdraw a booking.
type CancelBookingRequest struct {
	BookingID int64
	Caller    Caller
	Reason    string
}

// DecideBookingRequest applies a staff decision to a pending booking.
type DecideBookingRequest struct {
	BookingID int64
	Caller    Caller
	Approve   bool
	Reason    string // rejection reason, ignored on approval
}

// RescheduleBookingRequest moves a booking to a new date and interval.
type RescheduleBookingRequest struct {
	BookingID int64
	Caller    Caller
	Date      time.Time
	StartTime string
	EndTime   string
}

// GetUserBookingsRequest lists one user's bookings.
type GetUserBookingsRequest struct {
	TargetUserID int64
	Caller       Caller
	Status       *string
}

// GetAdminBookingsRequest lists bookings for the staff dashboard.
type GetAdminBookingsRequest struct {
	Caller          Caller
	SpaceID         *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter converts the request into a repository filter.
func (r *GetAdminBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		SpaceID:         r.SpaceID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is a booking as exposed by the service.
type BookingResponse struct {
	ID            int64  `json:"id"`
	SpaceID       int64  `json:"spaceId"`
	SpaceName     string `json:"spaceName"`
	SpaceCapacity int    `json:"spaceCapacity"`
	UserID        int64  `json:"userId"`
	Date          string `json:"date"`      // "2026-09-10"
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "12:00"
	ExpectedCount int    `json:"expectedCount"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status"`
	AutoExpired   bool   `json:"autoExpired,omitempty"`

	DecidedBy          *int64  `json:"decidedBy,omitempty"`
	RejectionReason    *string `json:"rejectionReason,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversions

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainBooking converts a domain booking into a DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		SpaceID:            b.SpaceID,
		SpaceName:          b.SpaceName,
		SpaceCapacity:      b.SpaceCapacity,
		UserID:             b.UserID,
		Date:               b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		ExpectedCount:      b.ExpectedCount,
		Purpose:            b.Purpose,
		Status:             string(b.Status),
		AutoExpired:        b.AutoExpired,
		DecidedBy:          b.DecidedBy,
		RejectionReason:    b.RejectionReason,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}
