package repository

import (
	"context"

	"hostelops/internal/domain/room"
	"hostelops/internal/infra"
	"hostelops/internal/infra/db"
	"hostelops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, branch_id, room_number, category, floor_section,
       max_occupants, current_occupants, cost_amount, cost_duration,
       benefits, media_ref, pinned_status, is_active, created_at, updated_at`

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

// FindByIDForUpdate locks the room row for the rest of the transaction.
// Every occupancy mutation goes through this lock so concurrent capacity
// checks cannot validate against a stale count.
func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, branchID, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1 AND branch_id = $2 FOR UPDATE`,
		id, branchID)

	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return rm, nil
}

// FindPairForUpdate locks two rooms in one statement. ORDER BY id fixes the
// global lock order, so crossing transfers cannot deadlock.
func (r *RoomRepository) FindPairForUpdate(ctx context.Context, branchID, first, second uuid.UUID) (map[uuid.UUID]*room.Room, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ANY($1) AND branch_id = $2 ORDER BY id FOR UPDATE`,
		[]uuid.UUID{first, second}, branchID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room pair", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*room.Room, 2)
	for rows.Next() {
		rm, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room", scanErr)
		}
		result[rm.ID()] = rm
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read room pair", rows.Err())
	}
	return result, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO rooms (id, branch_id, room_number, category, floor_section,
		        max_occupants, current_occupants, cost_amount, cost_duration,
		        benefits, media_ref, pinned_status, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rm.ID(), rm.BranchID(), rm.Number(), rm.Category(), rm.FloorSection(),
		rm.MaxOccupants(), rm.CurrentOccupants(), rm.CostAmount(), rm.CostDuration().String(),
		rm.Benefits(), rm.MediaRef(), pinnedToText(rm.Pinned()), rm.IsActive())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return rm.ID(), nil
}

// UpdateOccupancy persists the mutable occupancy state after a lifecycle
// operation: occupant count and pin, nothing else.
func (r *RoomRepository) UpdateOccupancy(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET current_occupants = $1, pinned_status = $2, updated_at = now()
		 WHERE id = $3 AND branch_id = $4`,
		rm.CurrentOccupants(), pinnedToText(rm.Pinned()), rm.ID(), rm.BranchID())
	if err != nil {
		return infra.WrapRepoErr("failed to update room occupancy", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) UpdateDetails(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET category = $1, floor_section = $2, cost_amount = $3,
		        cost_duration = $4, benefits = $5, media_ref = $6,
		        is_active = $7, updated_at = now()
		 WHERE id = $8 AND branch_id = $9`,
		rm.Category(), rm.FloorSection(), rm.CostAmount(),
		rm.CostDuration().String(), rm.Benefits(), rm.MediaRef(),
		rm.IsActive(), rm.ID(), rm.BranchID())
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func pinnedToText(p *room.PinnedStatus) pgtype.Text {
	if p == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: p.String(), Valid: true}
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id, branchID                    uuid.UUID
		number, category, floorSection  string
		maxOccupants, currentOccupants  int32
		costAmount                      int64
		costDuration                    string
		benefits                        []string
		mediaRef, pinned                pgtype.Text
		isActive                        bool
		createdAt, updatedAt            pgtype.Timestamptz
	)

	err := row.Scan(&id, &branchID, &number, &category, &floorSection,
		&maxOccupants, &currentOccupants, &costAmount, &costDuration,
		&benefits, &mediaRef, &pinned, &isActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var pinnedStatus *room.PinnedStatus
	if pinned.Valid {
		p := room.PinnedStatus(pinned.String)
		pinnedStatus = &p
	}

	return room.ReconstructRoom(
		id, branchID, number, category, floorSection,
		maxOccupants, currentOccupants, costAmount,
		room.CostDuration(costDuration), benefits,
		pgconv.StringPtrFromPgtype(mediaRef), pinnedStatus, isActive,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
