package room

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hostelops/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber     = errors.New("room number cannot be empty")
	ErrInvalidMaxOccupants = errors.New("max occupants must be at least 1")
	ErrNegativeCost        = errors.New("cost amount cannot be negative")
	ErrInvalidCostDuration = errors.New("invalid cost duration")
	ErrInvalidPinnedStatus = errors.New("invalid pinned status")
	ErrCapacityExceeded    = errors.New("room capacity exceeded")
	ErrRoomUnavailable     = errors.New("room is not in a bookable status")
	ErrRoomInactive        = errors.New("room is deactivated")
)

// Room is the contended aggregate of the occupancy engine. The occupant count
// is only ever mutated through AddOccupants/RemoveOccupants so the
// 0 <= current <= max invariant holds on every path.
type Room struct {
	id               uuid.UUID
	branchID         uuid.UUID
	number           string
	category         string
	floorSection     string
	maxOccupants     int32
	currentOccupants int32
	costAmount       int64
	costDuration     CostDuration
	benefits         []string
	mediaRef         *string
	pinned           *PinnedStatus
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(
	branchID uuid.UUID,
	number string,
	category string,
	floorSection string,
	maxOccupants int32,
	costAmount int64,
	costDuration CostDuration,
	benefits []string,
	mediaRef *string,
) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if maxOccupants < 1 {
		return nil, ErrInvalidMaxOccupants
	}
	if costAmount < 0 {
		return nil, ErrNegativeCost
	}
	if !costDuration.IsValid() {
		return nil, ErrInvalidCostDuration
	}
	if category == "" {
		category = "Regular"
	}

	return &Room{
		id:           uuid.New(),
		branchID:     branchID,
		number:       number,
		category:     category,
		floorSection: floorSection,
		maxOccupants: maxOccupants,
		costAmount:   costAmount,
		costDuration: costDuration,
		benefits:     benefits,
		mediaRef:     mediaRef,
		isActive:     true,
	}, nil
}

func ReconstructRoom(
	id, branchID uuid.UUID,
	number, category, floorSection string,
	maxOccupants, currentOccupants int32,
	costAmount int64,
	costDuration CostDuration,
	benefits []string,
	mediaRef *string,
	pinned *PinnedStatus,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		branchID:         branchID,
		number:           number,
		category:         category,
		floorSection:     floorSection,
		maxOccupants:     maxOccupants,
		currentOccupants: currentOccupants,
		costAmount:       costAmount,
		costDuration:     costDuration,
		benefits:         benefits,
		mediaRef:         mediaRef,
		pinned:           pinned,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Status returns the tagged availability value. A pin always wins over the
// derived state; lifecycle operations never write the pinned variant.
func (r *Room) Status() Status {
	return Status{derived: Derive(r.currentOccupants, r.maxOccupants), pinned: r.pinned}
}

func (r *Room) FreeCapacity() int32 {
	free := r.maxOccupants - r.currentOccupants
	if free < 0 {
		return 0
	}
	return free
}

// CanAddOccupants reports whether delta more guests fit. The error names the
// overflow so callers can surface actionable detail.
func (r *Room) CanAddOccupants(delta int32) error {
	if r.currentOccupants+delta > r.maxOccupants {
		overflow := r.currentOccupants + delta - r.maxOccupants
		return fmt.Errorf("%w: room %s holds %d/%d, adding %d exceeds capacity by %d",
			ErrCapacityExceeded, r.number, r.currentOccupants, r.maxOccupants, delta, overflow)
	}
	return nil
}

func (r *Room) AddOccupants(delta int32) error {
	if err := r.CanAddOccupants(delta); err != nil {
		return err
	}
	r.currentOccupants += delta
	return nil
}

// RemoveOccupants clamps at zero instead of erroring: removing more guests
// than recorded is a tolerated correction, not a failure. Returns the count
// actually removed.
func (r *Room) RemoveOccupants(delta int32) int32 {
	if delta > r.currentOccupants {
		removed := r.currentOccupants
		r.currentOccupants = 0
		return removed
	}
	r.currentOccupants -= delta
	return delta
}

// CheckTransferTarget validates this room as the destination of a transfer:
// it must be in a bookable status and have room for the whole party.
func (r *Room) CheckTransferTarget(headcount int32) error {
	if !r.isActive {
		return ErrRoomInactive
	}
	if st := r.Status(); !st.Bookable() {
		return fmt.Errorf("%w: room %s is %s", ErrRoomUnavailable, r.number, st.String())
	}
	if r.FreeCapacity() < headcount {
		return fmt.Errorf("%w: room %s has %d free, party of %d does not fit",
			ErrCapacityExceeded, r.number, r.FreeCapacity(), headcount)
	}
	return nil
}

func (r *Room) Pin(status PinnedStatus) error {
	if !status.IsValid() {
		return ErrInvalidPinnedStatus
	}
	r.pinned = &status
	return nil
}

func (r *Room) Unpin() {
	r.pinned = nil
}

func (r *Room) Deactivate() {
	r.isActive = false
}

func (r *Room) UpdateDetails(category, floorSection *string, costAmount *int64, costDuration *CostDuration, benefits []string, mediaRef *string) error {
	if costAmount != nil && *costAmount < 0 {
		return ErrNegativeCost
	}
	if costDuration != nil && !costDuration.IsValid() {
		return ErrInvalidCostDuration
	}
	r.category = patch.Coalesce(category, r.category)
	r.floorSection = patch.Coalesce(floorSection, r.floorSection)
	r.costAmount = patch.Coalesce(costAmount, r.costAmount)
	r.costDuration = patch.Coalesce(costDuration, r.costDuration)
	if benefits != nil {
		r.benefits = benefits
	}
	if mediaRef != nil {
		r.mediaRef = mediaRef
	}
	return nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) BranchID() uuid.UUID        { return r.branchID }
func (r *Room) Number() string             { return r.number }
func (r *Room) Category() string           { return r.category }
func (r *Room) FloorSection() string       { return r.floorSection }
func (r *Room) MaxOccupants() int32        { return r.maxOccupants }
func (r *Room) CurrentOccupants() int32    { return r.currentOccupants }
func (r *Room) CostAmount() int64          { return r.costAmount }
func (r *Room) CostDuration() CostDuration { return r.costDuration }
func (r *Room) Benefits() []string         { return r.benefits }
func (r *Room) MediaRef() *string          { return r.mediaRef }
func (r *Room) Pinned() *PinnedStatus      { return r.pinned }
func (r *Room) IsActive() bool             { return r.isActive }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
