package booking

type Status string

const (
	StatusPendingCheckIn Status = "pending_checkin"
	StatusCheckedIn      Status = "checked_in"
	StatusDeparted       Status = "departed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingCheckIn, StatusCheckedIn, StatusDeparted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking's headcount contributes to its room's
// occupant count.
func (s Status) IsActive() bool {
	return s == StatusPendingCheckIn || s == StatusCheckedIn
}

type DurationUnit string

const (
	UnitNight DurationUnit = "night"
	UnitDay   DurationUnit = "day"
	UnitHour  DurationUnit = "hour"
)

func (u DurationUnit) String() string {
	return string(u)
}

func (u DurationUnit) IsValid() bool {
	switch u {
	case UnitNight, UnitDay, UnitHour:
		return true
	default:
		return false
	}
}

func NewDurationUnit(s string) (DurationUnit, error) {
	u := DurationUnit(s)
	if !u.IsValid() {
		return "", ErrInvalidDurationUnit
	}
	return u, nil
}
