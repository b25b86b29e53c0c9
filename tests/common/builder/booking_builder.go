//go:build unit || e2e

package builder

import (
	"time"

	"hostelops/internal/domain/booking"
	reqdto "hostelops/internal/handler/dto/request"
	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                uuid.UUID
	BranchID          uuid.UUID
	RoomID            uuid.UUID
	RoomNumber        string
	OrderRef          string
	CustomerName      string
	NumOccupants      int32
	ScheduledCheckIn  time.Time
	ScheduledCheckOut *time.Time
	ActualCheckIn     *time.Time
	ActualCheckOut    *time.Time
	DurationCount     int32
	DurationUnit      string
	Status            string
	Notes             *string
	Transfers         []booking.Transfer
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	checkIn := now.Add(2 * time.Hour)
	return &BookingBuilder{
		ID:               uuid.New(),
		BranchID:         uuid.New(),
		RoomID:           uuid.New(),
		RoomNumber:       "101",
		OrderRef:         "ORD-0001",
		CustomerName:     "Tanaka Taro",
		NumOccupants:     2,
		ScheduledCheckIn: checkIn,
		DurationCount:    3,
		DurationUnit:     "night",
		Status:           "pending_checkin",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.GuestBooking, error) {
	unit, err := booking.NewDurationUnit(b.DurationUnit)
	if err != nil {
		return nil, err
	}
	return booking.NewGuestBooking(b.BranchID, b.RoomID, b.OrderRef,
		b.CustomerName, b.NumOccupants, b.ScheduledCheckIn,
		b.ScheduledCheckOut, b.DurationCount, unit, b.Notes)
}

// BuildReconstructed returns a booking in an arbitrary lifecycle state.
func (b *BookingBuilder) BuildReconstructed() *booking.GuestBooking {
	return booking.ReconstructGuestBooking(b.ID, b.BranchID, b.RoomID,
		b.OrderRef, b.CustomerName, b.NumOccupants, b.ScheduledCheckIn,
		b.ScheduledCheckOut, b.ActualCheckIn, b.ActualCheckOut,
		b.DurationCount, booking.DurationUnit(b.DurationUnit),
		booking.Status(b.Status), b.Notes, b.Transfers, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:            b.RoomID,
		OrderRef:          b.OrderRef,
		CustomerName:      b.CustomerName,
		NumOccupants:      b.NumOccupants,
		ScheduledCheckIn:  b.ScheduledCheckIn,
		ScheduledCheckOut: b.ScheduledCheckOut,
		DurationCount:     b.DurationCount,
		DurationUnit:      b.DurationUnit,
		Notes:             b.Notes,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ID:                b.ID,
		BranchID:          b.BranchID,
		RoomID:            b.RoomID,
		RoomNumber:        b.RoomNumber,
		OrderRef:          b.OrderRef,
		CustomerName:      b.CustomerName,
		NumOccupants:      b.NumOccupants,
		ScheduledCheckIn:  b.ScheduledCheckIn,
		ScheduledCheckOut: b.ScheduledCheckOut,
		ActualCheckIn:     b.ActualCheckIn,
		ActualCheckOut:    b.ActualCheckOut,
		DurationCount:     b.DurationCount,
		DurationUnit:      b.DurationUnit,
		Status:            b.Status,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:                b.ID,
		RoomID:            b.RoomID,
		RoomNumber:        b.RoomNumber,
		CustomerName:      b.CustomerName,
		NumOccupants:      b.NumOccupants,
		Status:            b.Status,
		ScheduledCheckOut: b.ScheduledCheckOut,
		CreatedAt:         b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithBranchID(branchID uuid.UUID) *BookingBuilder {
	b.BranchID = branchID
	return b
}

func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithNumOccupants(n int32) *BookingBuilder {
	b.NumOccupants = n
	return b
}

func (b *BookingBuilder) WithOrderRef(ref string) *BookingBuilder {
	b.OrderRef = ref
	return b
}

func (b *BookingBuilder) AsCheckedIn(at time.Time) *BookingBuilder {
	b.Status = "checked_in"
	b.ActualCheckIn = &at
	return b
}

func (b *BookingBuilder) AsDeparted(checkIn, checkOut time.Time) *BookingBuilder {
	b.Status = "departed"
	b.ActualCheckIn = &checkIn
	b.ActualCheckOut = &checkOut
	return b
}
