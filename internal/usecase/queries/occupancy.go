package queries

import (
	"context"

	"github.com/google/uuid"
)

// ReconciliationRow reports the gap between a room's recorded occupant count
// and the sum of headcounts of its active bookings. A non-zero drift
// usually means a manual free-room override happened while guests were still
// attached.
type ReconciliationRow struct {
	RoomID            uuid.UUID `json:"room_id"`
	RoomNumber        string    `json:"room_number"`
	RecordedOccupants int32     `json:"recorded_occupants"`
	BookedHeadcount   int32     `json:"booked_headcount"`
	Drift             int32     `json:"drift"`
}

type OccupancySummary struct {
	TotalRooms         int32 `json:"total_rooms"`
	AvailableRooms     int32 `json:"available_rooms"`
	PartiallyOccupied  int32 `json:"partially_occupied_rooms"`
	OccupiedRooms      int32 `json:"occupied_rooms"`
	PinnedRooms        int32 `json:"pinned_rooms"`
	OccupantsTotal     int32 `json:"occupants_total"`
	CapacityTotal      int32 `json:"capacity_total"`
	ActiveBookingCount int32 `json:"active_booking_count"`
}

type OccupancyReadStore interface {
	Reconciliation(ctx context.Context, branchID uuid.UUID) ([]*ReconciliationRow, error)
	BranchSummary(ctx context.Context, branchID uuid.UUID) (*OccupancySummary, error)
}

type OccupancyQueries interface {
	Reconciliation(ctx context.Context, branchID uuid.UUID) ([]*ReconciliationRow, error)
	BranchSummary(ctx context.Context, branchID uuid.UUID) (*OccupancySummary, error)
}

type occupancyQueriesImpl struct {
	repo OccupancyReadStore
}

func NewOccupancyQueries(repo OccupancyReadStore) OccupancyQueries {
	return &occupancyQueriesImpl{repo: repo}
}

func (q *occupancyQueriesImpl) Reconciliation(ctx context.Context, branchID uuid.UUID) ([]*ReconciliationRow, error) {
	return q.repo.Reconciliation(ctx, branchID)
}

func (q *occupancyQueriesImpl) BranchSummary(ctx context.Context, branchID uuid.UUID) (*OccupancySummary, error) {
	return q.repo.BranchSummary(ctx, branchID)
}
