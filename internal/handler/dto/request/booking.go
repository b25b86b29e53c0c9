package request

import (
	"strings"
	"time"

	"hostelops/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID            uuid.UUID  `json:"room_id" binding:"required"`
	OrderRef          string     `json:"order_ref" binding:"required"`
	CustomerName      string     `json:"customer_name" binding:"required"`
	NumOccupants      int32      `json:"num_occupants" binding:"required,min=1"`
	ScheduledCheckIn  time.Time  `json:"scheduled_check_in" binding:"required"`
	ScheduledCheckOut *time.Time `json:"scheduled_check_out,omitempty"`
	DurationCount     int32      `json:"duration_count" binding:"required,min=1"`
	DurationUnit      string     `json:"duration_unit" binding:"required,oneof=night day hour"`
	Notes             *string    `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToDomain(branchID uuid.UUID) (*booking.GuestBooking, error) {
	unit, err := booking.NewDurationUnit(r.DurationUnit)
	if err != nil {
		return nil, err
	}
	return booking.NewGuestBooking(
		branchID,
		r.RoomID,
		r.OrderRef,
		r.CustomerName,
		r.NumOccupants,
		r.ScheduledCheckIn,
		r.ScheduledCheckOut,
		r.DurationCount,
		unit,
		trimmedPtr(r.Notes),
	)
}

type CheckInRequest struct {
	RevisedOccupants *int32 `json:"revised_occupants,omitempty" binding:"omitempty,min=1"`
}

type TransferRequest struct {
	ToRoomID uuid.UUID `json:"to_room_id" binding:"required"`
	Notes    *string   `json:"notes,omitempty"`
}

type ExtendStayRequest struct {
	ExtraDuration int32      `json:"extra_duration" binding:"required,min=1"`
	NewCheckOut   *time.Time `json:"new_check_out,omitempty"`
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
