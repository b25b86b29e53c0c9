package request

import (
	"hostelops/internal/domain/room"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber   string   `json:"room_number" binding:"required"`
	Category     string   `json:"category"`
	FloorSection string   `json:"floor_section"`
	MaxOccupants int32    `json:"max_occupants" binding:"required,min=1"`
	CostAmount   int64    `json:"cost_amount" binding:"min=0"`
	CostDuration string   `json:"cost_duration" binding:"required,oneof=night day hour"`
	Benefits     []string `json:"benefits"`
	MediaRef     *string  `json:"media_ref,omitempty"`
}

func (r CreateRoomRequest) ToDomain(branchID uuid.UUID) (*room.Room, error) {
	duration, err := room.NewCostDuration(r.CostDuration)
	if err != nil {
		return nil, err
	}
	benefits := r.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return room.NewRoom(
		branchID,
		r.RoomNumber,
		r.Category,
		r.FloorSection,
		r.MaxOccupants,
		r.CostAmount,
		duration,
		benefits,
		trimmedPtr(r.MediaRef),
	)
}

type UpdateRoomRequest struct {
	Category     *string  `json:"category,omitempty"`
	FloorSection *string  `json:"floor_section,omitempty"`
	CostAmount   *int64   `json:"cost_amount,omitempty" binding:"omitempty,min=0"`
	CostDuration *string  `json:"cost_duration,omitempty" binding:"omitempty,oneof=night day hour"`
	Benefits     []string `json:"benefits,omitempty"`
	MediaRef     *string  `json:"media_ref,omitempty"`
}

type PinRoomRequest struct {
	Status string `json:"status" binding:"required,oneof=maintenance reserved"`
}
