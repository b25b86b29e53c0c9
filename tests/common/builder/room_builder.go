//go:build unit || e2e

package builder

import (
	"time"

	"hostelops/internal/domain/room"
	reqdto "hostelops/internal/handler/dto/request"
	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID               uuid.UUID
	BranchID         uuid.UUID
	RoomNumber       string
	Category         string
	FloorSection     string
	MaxOccupants     int32
	CurrentOccupants int32
	CostAmount       int64
	CostDuration     string
	Benefits         []string
	MediaRef         *string
	Pinned           *string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:           uuid.New(),
		BranchID:     uuid.New(),
		RoomNumber:   "101",
		Category:     "Regular",
		FloorSection: "1F",
		MaxOccupants: 4,
		CostAmount:   2500,
		CostDuration: "night",
		Benefits:     []string{"wifi"},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	duration, err := room.NewCostDuration(r.CostDuration)
	if err != nil {
		return nil, err
	}
	return room.NewRoom(r.BranchID, r.RoomNumber, r.Category, r.FloorSection,
		r.MaxOccupants, r.CostAmount, duration, r.Benefits, r.MediaRef)
}

// BuildReconstructed returns a room in an arbitrary mid-lifecycle state,
// bypassing the constructor's zero-occupant start.
func (r *RoomBuilder) BuildReconstructed() *room.Room {
	var pinned *room.PinnedStatus
	if r.Pinned != nil {
		p := room.PinnedStatus(*r.Pinned)
		pinned = &p
	}
	return room.ReconstructRoom(r.ID, r.BranchID, r.RoomNumber, r.Category,
		r.FloorSection, r.MaxOccupants, r.CurrentOccupants, r.CostAmount,
		room.CostDuration(r.CostDuration), r.Benefits, r.MediaRef, pinned,
		r.IsActive, r.CreatedAt, r.UpdatedAt)
}

func (r *RoomBuilder) BuildDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		RoomNumber:   r.RoomNumber,
		Category:     r.Category,
		FloorSection: r.FloorSection,
		MaxOccupants: r.MaxOccupants,
		CostAmount:   r.CostAmount,
		CostDuration: r.CostDuration,
		Benefits:     r.Benefits,
		MediaRef:     r.MediaRef,
	}
}

func (r *RoomBuilder) BuildReadModel() *queries.RoomView {
	status := string(room.Derive(r.CurrentOccupants, r.MaxOccupants))
	if r.Pinned != nil {
		status = *r.Pinned
	}
	return &queries.RoomView{
		ID:               r.ID,
		BranchID:         r.BranchID,
		RoomNumber:       r.RoomNumber,
		Category:         r.Category,
		FloorSection:     r.FloorSection,
		Status:           status,
		Pinned:           r.Pinned != nil,
		CurrentOccupants: r.CurrentOccupants,
		MaxOccupants:     r.MaxOccupants,
		CostAmount:       r.CostAmount,
		CostDuration:     r.CostDuration,
		Benefits:         r.Benefits,
		MediaRef:         r.MediaRef,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildListItem() *queries.RoomListItem {
	status := string(room.Derive(r.CurrentOccupants, r.MaxOccupants))
	if r.Pinned != nil {
		status = *r.Pinned
	}
	return &queries.RoomListItem{
		ID:               r.ID,
		RoomNumber:       r.RoomNumber,
		Category:         r.Category,
		Status:           status,
		CurrentOccupants: r.CurrentOccupants,
		MaxOccupants:     r.MaxOccupants,
		CostAmount:       r.CostAmount,
		CostDuration:     r.CostDuration,
		CreatedAt:        r.CreatedAt,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithBranchID(branchID uuid.UUID) *RoomBuilder {
	r.BranchID = branchID
	return r
}

func (r *RoomBuilder) WithRoomNumber(number string) *RoomBuilder {
	r.RoomNumber = number
	return r
}

func (r *RoomBuilder) WithCapacity(current, max int32) *RoomBuilder {
	r.CurrentOccupants = current
	r.MaxOccupants = max
	return r
}

func (r *RoomBuilder) WithCost(amount int64, duration string) *RoomBuilder {
	r.CostAmount = amount
	r.CostDuration = duration
	return r
}

func (r *RoomBuilder) WithPinned(status string) *RoomBuilder {
	r.Pinned = &status
	return r
}

func (r *RoomBuilder) AsInactive() *RoomBuilder {
	r.IsActive = false
	return r
}
