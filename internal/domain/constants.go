package domain

// Business validation constants
const (
	MinExpectedCount       = 1
	MaxPurposeLength       = 1000
	MaxReasonLength        = 500
	MaxSpaceNameLength     = 100
	MaxLocationLength      = 100
	MaxAdvanceBookingDays  = 365 // bookings at most one year out
	MinBookingDurationMins = 15
	ApprovalWindowHours    = 24 // pending bookings expire past this
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that occupy a slot.
// Used when counting conflicts for new or rescheduled bookings.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses are the statuses excluded from availability checks.
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}

// StaffRoles may approve, reject and reschedule bookings and manage
// blocked dates. Values arrive in the X-User-Role gateway header.
var StaffRoles = []string{"receptionist", "admin"}

// IsStaffRole reports whether role carries staff privileges.
func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
