package readstore

import (
	"context"
	"time"

	"hostelops/internal/infra"
	"hostelops/internal/infra/db"
	"hostelops/internal/pkg/pgconv"
	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Availability is derived in SQL so list filters see the same value the API
// returns: the pin wins, otherwise the count decides.
const roomStatusExpr = `COALESCE(pinned_status,
       CASE WHEN current_occupants <= 0 THEN 'available'
            WHEN current_occupants >= max_occupants THEN 'occupied'
            ELSE 'partially_occupied' END)`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindByID(ctx context.Context, branchID, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, branch_id, room_number, category, floor_section,
		        `+roomStatusExpr+` AS status, pinned_status IS NOT NULL AS pinned,
		        current_occupants, max_occupants, cost_amount, cost_duration,
		        benefits, media_ref, is_active, created_at, updated_at
		 FROM rooms
		 WHERE id = $1 AND branch_id = $2`,
		id, branchID)

	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *RoomReadStore) FindByBranchFirstPage(ctx context.Context, branchID uuid.UUID, limit int32, status *string) ([]*queries.RoomListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, room_number, category, `+roomStatusExpr+` AS status,
		        current_occupants, max_occupants, cost_amount, cost_duration, created_at
		 FROM rooms
		 WHERE branch_id = $1 AND is_active = true
		   AND ($2::text IS NULL OR `+roomStatusExpr+` = $2)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3`,
		branchID, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms first page", err)
	}
	defer rows.Close()

	return collectRoomListItems(rows)
}

func (r *RoomReadStore) FindByBranchKeyset(ctx context.Context, branchID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, status *string) ([]*queries.RoomListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, room_number, category, `+roomStatusExpr+` AS status,
		        current_occupants, max_occupants, cost_amount, cost_duration, created_at
		 FROM rooms
		 WHERE branch_id = $1 AND is_active = true
		   AND ($2::text IS NULL OR `+roomStatusExpr+` = $2)
		   AND (created_at, id) < ($3, $4)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $5`,
		branchID, status, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms keyset", err)
	}
	defer rows.Close()

	return collectRoomListItems(rows)
}

func collectRoomListItems(rows pgx.Rows) ([]*queries.RoomListItem, error) {
	var result []*queries.RoomListItem
	for rows.Next() {
		var (
			item      queries.RoomListItem
			createdAt pgtype.Timestamptz
		)
		err := rows.Scan(&item.ID, &item.RoomNumber, &item.Category, &item.Status,
			&item.CurrentOccupants, &item.MaxOccupants, &item.CostAmount,
			&item.CostDuration, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room list item", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read room list", rows.Err())
	}
	return result, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var (
		view                 queries.RoomView
		mediaRef             pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&view.ID, &view.BranchID, &view.RoomNumber, &view.Category,
		&view.FloorSection, &view.Status, &view.Pinned,
		&view.CurrentOccupants, &view.MaxOccupants, &view.CostAmount,
		&view.CostDuration, &view.Benefits, &mediaRef, &view.IsActive,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	view.MediaRef = pgconv.StringPtrFromPgtype(mediaRef)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
