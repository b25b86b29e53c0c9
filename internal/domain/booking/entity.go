package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrderRef       = errors.New("order reference cannot be empty")
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrInvalidHeadcount    = errors.New("number of occupants must be at least 1")
	ErrInvalidDuration     = errors.New("duration count must be at least 1")
	ErrInvalidDurationUnit = errors.New("invalid duration unit")
	ErrInvalidTransition   = errors.New("operation not permitted in current booking status")
	ErrSameRoom            = errors.New("transfer target is the booking's current room")
)

// Transfer is one appended history entry; the slice on the booking is
// ordered oldest first.
type Transfer struct {
	FromRoomID     uuid.UUID
	ToRoomID       uuid.UUID
	FromRoomNumber string
	ToRoomNumber   string
	ByStaffID      uuid.UUID
	At             time.Time
	Notes          *string
}

// GuestBooking tracks one occupant group's stay. Its headcount contributes to
// exactly one room while the status is active; the lifecycle manager keeps
// both sides in step inside a single transaction.
type GuestBooking struct {
	id                uuid.UUID
	branchID          uuid.UUID
	roomID            uuid.UUID
	orderRef          string
	customerName      string
	numOccupants      int32
	scheduledCheckIn  time.Time
	scheduledCheckOut *time.Time
	actualCheckIn     *time.Time
	actualCheckOut    *time.Time
	durationCount     int32
	durationUnit      DurationUnit
	status            Status
	notes             *string
	transfers         []Transfer
	createdAt         time.Time
	updatedAt         time.Time
}

func NewGuestBooking(
	branchID, roomID uuid.UUID,
	orderRef, customerName string,
	numOccupants int32,
	scheduledCheckIn time.Time,
	scheduledCheckOut *time.Time,
	durationCount int32,
	durationUnit DurationUnit,
	notes *string,
) (*GuestBooking, error) {
	if strings.TrimSpace(orderRef) == "" {
		return nil, ErrEmptyOrderRef
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrEmptyCustomerName
	}
	if numOccupants < 1 {
		return nil, ErrInvalidHeadcount
	}
	if durationCount < 1 {
		return nil, ErrInvalidDuration
	}
	if !durationUnit.IsValid() {
		return nil, ErrInvalidDurationUnit
	}

	return &GuestBooking{
		id:                uuid.New(),
		branchID:          branchID,
		roomID:            roomID,
		orderRef:          strings.TrimSpace(orderRef),
		customerName:      strings.TrimSpace(customerName),
		numOccupants:      numOccupants,
		scheduledCheckIn:  scheduledCheckIn,
		scheduledCheckOut: scheduledCheckOut,
		durationCount:     durationCount,
		durationUnit:      durationUnit,
		status:            StatusPendingCheckIn,
		notes:             notes,
	}, nil
}

func ReconstructGuestBooking(
	id, branchID, roomID uuid.UUID,
	orderRef, customerName string,
	numOccupants int32,
	scheduledCheckIn time.Time,
	scheduledCheckOut, actualCheckIn, actualCheckOut *time.Time,
	durationCount int32,
	durationUnit DurationUnit,
	status Status,
	notes *string,
	transfers []Transfer,
	createdAt, updatedAt time.Time,
) *GuestBooking {
	return &GuestBooking{
		id:                id,
		branchID:          branchID,
		roomID:            roomID,
		orderRef:          orderRef,
		customerName:      customerName,
		numOccupants:      numOccupants,
		scheduledCheckIn:  scheduledCheckIn,
		scheduledCheckOut: scheduledCheckOut,
		actualCheckIn:     actualCheckIn,
		actualCheckOut:    actualCheckOut,
		durationCount:     durationCount,
		durationUnit:      durationUnit,
		status:            status,
		notes:             notes,
		transfers:         transfers,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// CheckIn marks arrival. A revised headcount adjusts the party size; the
// returned delta (revised - previous) is what the room's occupant count must
// absorb, so a correction never double-counts the original party.
func (b *GuestBooking) CheckIn(at time.Time, revisedOccupants *int32) (int32, error) {
	if b.status != StatusPendingCheckIn {
		return 0, fmt.Errorf("%w: check-in requires pending_checkin, booking is %s", ErrInvalidTransition, b.status)
	}

	var delta int32
	if revisedOccupants != nil {
		if *revisedOccupants < 1 {
			return 0, ErrInvalidHeadcount
		}
		delta = *revisedOccupants - b.numOccupants
		b.numOccupants = *revisedOccupants
	}

	b.status = StatusCheckedIn
	b.actualCheckIn = &at
	return delta, nil
}

// CanTransfer reports whether the booking is in a status that permits a room
// transfer. Checked before any room-side validation so a bad status is never
// reported as a capacity problem.
func (b *GuestBooking) CanTransfer() error {
	if b.status != StatusCheckedIn {
		return fmt.Errorf("%w: transfer requires checked_in, booking is %s", ErrInvalidTransition, b.status)
	}
	return nil
}

// TransferTo moves the booking to another room and appends the history entry.
// Occupant accounting on both rooms is the caller's responsibility, under the
// same transaction.
func (b *GuestBooking) TransferTo(toRoomID uuid.UUID, entry Transfer) error {
	if err := b.CanTransfer(); err != nil {
		return err
	}
	if toRoomID == b.roomID {
		return ErrSameRoom
	}

	b.roomID = toRoomID
	b.transfers = append(b.transfers, entry)
	return nil
}

// ExtendStay only moves the scheduled check-out; billing for the added
// duration is a separate order and occupancy is untouched.
func (b *GuestBooking) ExtendStay(newCheckOut *time.Time) error {
	if b.status != StatusCheckedIn {
		return fmt.Errorf("%w: extend requires checked_in, booking is %s", ErrInvalidTransition, b.status)
	}
	if newCheckOut != nil {
		b.scheduledCheckOut = newCheckOut
	}
	return nil
}

// Depart is terminal.
func (b *GuestBooking) Depart(at time.Time) error {
	if b.status != StatusCheckedIn {
		return fmt.Errorf("%w: depart requires checked_in, booking is %s", ErrInvalidTransition, b.status)
	}
	b.status = StatusDeparted
	b.actualCheckOut = &at
	return nil
}

func (b *GuestBooking) IsActive() bool {
	return b.status.IsActive()
}

func (b *GuestBooking) SetNotes(notes *string) {
	b.notes = notes
}

func (b *GuestBooking) ID() uuid.UUID                { return b.id }
func (b *GuestBooking) BranchID() uuid.UUID          { return b.branchID }
func (b *GuestBooking) RoomID() uuid.UUID            { return b.roomID }
func (b *GuestBooking) OrderRef() string             { return b.orderRef }
func (b *GuestBooking) CustomerName() string         { return b.customerName }
func (b *GuestBooking) NumOccupants() int32          { return b.numOccupants }
func (b *GuestBooking) ScheduledCheckIn() time.Time  { return b.scheduledCheckIn }
func (b *GuestBooking) ScheduledCheckOut() *time.Time { return b.scheduledCheckOut }
func (b *GuestBooking) ActualCheckIn() *time.Time    { return b.actualCheckIn }
func (b *GuestBooking) ActualCheckOut() *time.Time   { return b.actualCheckOut }
func (b *GuestBooking) DurationCount() int32         { return b.durationCount }
func (b *GuestBooking) DurationUnit() DurationUnit   { return b.durationUnit }
func (b *GuestBooking) Status() Status               { return b.status }
func (b *GuestBooking) Notes() *string               { return b.notes }
func (b *GuestBooking) Transfers() []Transfer        { return b.transfers }
func (b *GuestBooking) CreatedAt() time.Time         { return b.createdAt }
func (b *GuestBooking) UpdatedAt() time.Time         { return b.updatedAt }
