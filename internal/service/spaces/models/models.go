package models

import (
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
)

// Caller identifies who is asking. Access rules live in the service.
type Caller struct {
	UserID int64
	Role   string
}

// IsStaff reports whether the caller holds a staff role.
func (c Caller) IsStaff() bool {
	return domain.IsStaffRole(c.Role)
}

// AddBlockRequest blocks a date for one space or campus-wide.
type AddBlockRequest struct {
	Caller  Caller
	SpaceID *int64 // nil blocks all spaces
	Date    time.Time
	Reason  string
}

// RemoveBlockRequest lifts a block.
type RemoveBlockRequest struct {
	Caller  Caller
	BlockID int64
}

// FacilityResponse is a facility attached to a space.
type FacilityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SpaceResponse is a space as exposed by the service.
type SpaceResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	Location    string             `json:"location"`
	Capacity    int                `json:"capacity"`
	Description string             `json:"description,omitempty"`
	Facilities  []FacilityResponse `json:"facilities"`
}

// SpaceListResponse is a list of spaces.
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// UnavailableDatesResponse lists future dates a space cannot be booked.
type UnavailableDatesResponse struct {
	SpaceID int64    `json:"spaceId"`
	Dates   []string `json:"dates"` // "2026-09-10"
}

// BlockedDateResponse is a block as exposed by the service.
type BlockedDateResponse struct {
	ID      int64  `json:"id"`
	SpaceID *int64 `json:"spaceId,omitempty"` // absent for campus-wide blocks
	Date    string `json:"date"`
	Reason  string `json:"reason"`
}

// BlockedDateListResponse is a list of blocks.
type BlockedDateListResponse struct {
	Blocks []BlockedDateResponse `json:"blocks"`
}

// FromDomainSpace converts a domain space into a DTO.
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	if s == nil {
		return nil
	}

	facilities := make([]FacilityResponse, 0, len(s.Facilities))
	for _, f := range s.Facilities {
		facilities = append(facilities, FacilityResponse{ID: f.ID, Name: f.Name})
	}

	return &SpaceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Type:        string(s.Type),
		Location:    s.Location,
		Capacity:    s.Capacity,
		Description: s.Description,
		Facilities:  facilities,
	}
}

// FromDomainSpaceList converts a slice of domain spaces.
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	out := make([]SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, *FromDomainSpace(s))
	}
	return &SpaceListResponse{Spaces: out}
}

// FromDomainBlockedDate converts a domain block into a DTO.
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:      b.ID,
		SpaceID: b.SpaceID,
		Date:    b.Date.Format(domain.DateFormat),
		Reason:  b.Reason,
	}
}

// FromDomainBlockedDateList converts a slice of domain blocks.
func FromDomainBlockedDateList(blocks []*domain.BlockedDate) *BlockedDateListResponse {
	out := make([]BlockedDateResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, *FromDomainBlockedDate(b))
	}
	return &BlockedDateListResponse{Blocks: out}
}
