package domain

import "time"

// BlockedDate marks a date as unavailable for booking.
// SpaceID nil blocks every space (campus-wide holiday or maintenance).
type BlockedDate struct {
	ID      int64
	SpaceID *int64
	Date    time.Time
	Reason  string

	CreatedAt time.Time
}

// IsGlobal returns true if the block applies to all spaces.
func (b *BlockedDate) IsGlobal() bool {
	return b.SpaceID == nil
}

// AppliesTo reports whether the block covers the given space.
func (b *BlockedDate) AppliesTo(spaceID int64) bool {
	return b.SpaceID == nil || *b.SpaceID == spaceID
}
