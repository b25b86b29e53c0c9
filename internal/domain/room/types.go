package room

// DerivedStatus is computed from the occupant count and never stored as an
// independent fact.
type DerivedStatus string

const (
	StatusAvailable         DerivedStatus = "available"
	StatusPartiallyOccupied DerivedStatus = "partially_occupied"
	StatusOccupied          DerivedStatus = "occupied"
)

// PinnedStatus is set by explicit staff action and overrides derivation until
// it is cleared again.
type PinnedStatus string

const (
	StatusMaintenance PinnedStatus = "maintenance"
	StatusReserved    PinnedStatus = "reserved"
)

func (p PinnedStatus) String() string {
	return string(p)
}

func (p PinnedStatus) IsValid() bool {
	switch p {
	case StatusMaintenance, StatusReserved:
		return true
	default:
		return false
	}
}

func NewPinnedStatus(s string) (PinnedStatus, error) {
	p := PinnedStatus(s)
	if !p.IsValid() {
		return "", ErrInvalidPinnedStatus
	}
	return p, nil
}

// Status is the tagged availability value: either derived from occupancy or
// pinned by staff.
type Status struct {
	derived DerivedStatus
	pinned  *PinnedStatus
}

func (s Status) IsPinned() bool {
	return s.pinned != nil
}

func (s Status) Derived() DerivedStatus {
	return s.derived
}

func (s Status) String() string {
	if s.pinned != nil {
		return s.pinned.String()
	}
	return string(s.derived)
}

// Bookable reports whether a transfer may target a room in this status.
func (s Status) Bookable() bool {
	if s.pinned != nil {
		return false
	}
	return s.derived == StatusAvailable || s.derived == StatusPartiallyOccupied
}

// Derive maps an occupant count and a capacity to the availability status.
// Pure and total: counts at or below zero are available, counts at or above
// capacity are occupied.
func Derive(occupants, maxOccupants int32) DerivedStatus {
	switch {
	case occupants <= 0:
		return StatusAvailable
	case occupants >= maxOccupants:
		return StatusOccupied
	default:
		return StatusPartiallyOccupied
	}
}

type CostDuration string

const (
	CostPerNight CostDuration = "night"
	CostPerDay   CostDuration = "day"
	CostPerHour  CostDuration = "hour"
)

func (d CostDuration) String() string {
	return string(d)
}

func (d CostDuration) IsValid() bool {
	switch d {
	case CostPerNight, CostPerDay, CostPerHour:
		return true
	default:
		return false
	}
}

func NewCostDuration(s string) (CostDuration, error) {
	d := CostDuration(s)
	if !d.IsValid() {
		return "", ErrInvalidCostDuration
	}
	return d, nil
}
