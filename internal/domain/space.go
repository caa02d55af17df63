package domain

import "time"

// SpaceType classifies a bookable campus resource.
type SpaceType string

const (
	TypeHall      SpaceType = "hall"
	TypeClassroom SpaceType = "classroom"
	TypeLab       SpaceType = "lab"
	TypeBus       SpaceType = "bus"
)

// ValidSpaceTypes lists every accepted space type.
var ValidSpaceTypes = []SpaceType{TypeHall, TypeClassroom, TypeLab, TypeBus}

// IsValidSpaceType reports whether t is a known space type.
func IsValidSpaceType(t SpaceType) bool {
	for _, v := range ValidSpaceTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Facility is an amenity attached to a space (projector, AC, mic...).
type Facility struct {
	ID   int64
	Name string
}

// Space is a bookable campus resource: a hall, classroom, lab or bus.
// Capacity is seating capacity for rooms and passenger capacity for buses.
type Space struct {
	ID          int64
	Name        string
	Type        SpaceType
	Location    string
	Capacity    int
	Description string
	Facilities  []Facility
	ManagedBy   *int64 // staff member responsible, if assigned
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanSeat reports whether the space holds at least count people.
func (s *Space) CanSeat(count int) bool {
	return s.Capacity >= count
}
