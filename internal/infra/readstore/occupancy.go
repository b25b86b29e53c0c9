package readstore

import (
	"context"

	"hostelops/internal/infra"
	"hostelops/internal/infra/db"
	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type OccupancyReadStore struct {
	db db.DBTX
}

func NewOccupancyReadStore(dbtx db.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{db: dbtx}
}

// Reconciliation compares each room's recorded occupant count against the sum
// of headcounts of its active bookings and returns only the rooms where the
// two disagree. Pending bookings count: attach already incremented the room.
func (r *OccupancyReadStore) Reconciliation(ctx context.Context, branchID uuid.UUID) ([]*queries.ReconciliationRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rm.id, rm.room_number, rm.current_occupants,
		        COALESCE(SUM(b.num_occupants) FILTER (WHERE b.status IN ('pending_checkin', 'checked_in')), 0)::int AS booked
		 FROM rooms rm
		 LEFT JOIN guest_bookings b ON b.room_id = rm.id
		 WHERE rm.branch_id = $1 AND rm.is_active = true
		 GROUP BY rm.id, rm.room_number, rm.current_occupants
		 HAVING rm.current_occupants <> COALESCE(SUM(b.num_occupants) FILTER (WHERE b.status IN ('pending_checkin', 'checked_in')), 0)
		 ORDER BY rm.room_number`,
		branchID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to run occupancy reconciliation", err)
	}
	defer rows.Close()

	var result []*queries.ReconciliationRow
	for rows.Next() {
		var row queries.ReconciliationRow
		if err := rows.Scan(&row.RoomID, &row.RoomNumber, &row.RecordedOccupants, &row.BookedHeadcount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reconciliation row", err)
		}
		row.Drift = row.RecordedOccupants - row.BookedHeadcount
		result = append(result, &row)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read reconciliation rows", rows.Err())
	}
	return result, nil
}

func (r *OccupancyReadStore) BranchSummary(ctx context.Context, branchID uuid.UUID) (*queries.OccupancySummary, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*)::int AS total_rooms,
		        COUNT(*) FILTER (WHERE pinned_status IS NULL AND current_occupants <= 0)::int AS available,
		        COUNT(*) FILTER (WHERE pinned_status IS NULL AND current_occupants > 0 AND current_occupants < max_occupants)::int AS partially,
		        COUNT(*) FILTER (WHERE pinned_status IS NULL AND current_occupants >= max_occupants)::int AS occupied,
		        COUNT(*) FILTER (WHERE pinned_status IS NOT NULL)::int AS pinned,
		        COALESCE(SUM(current_occupants), 0)::int AS occupants_total,
		        COALESCE(SUM(max_occupants), 0)::int AS capacity_total,
		        (SELECT COUNT(*)::int FROM guest_bookings
		         WHERE branch_id = $1 AND status IN ('pending_checkin', 'checked_in')) AS active_bookings
		 FROM rooms
		 WHERE branch_id = $1 AND is_active = true`,
		branchID)

	var summary queries.OccupancySummary
	err := row.Scan(&summary.TotalRooms, &summary.AvailableRooms, &summary.PartiallyOccupied,
		&summary.OccupiedRooms, &summary.PinnedRooms, &summary.OccupantsTotal,
		&summary.CapacityTotal, &summary.ActiveBookingCount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load branch occupancy summary", err)
	}
	return &summary, nil
}
