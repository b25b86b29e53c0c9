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

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, branchID, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT b.id, b.branch_id, b.room_id, rm.room_number, b.order_ref,
		        b.customer_name, b.num_occupants, b.status,
		        b.duration_count, b.duration_unit,
		        b.scheduled_check_in, b.scheduled_check_out,
		        b.actual_check_in, b.actual_check_out,
		        b.notes, b.created_at, b.updated_at
		 FROM guest_bookings b
		 JOIN rooms rm ON rm.id = b.room_id
		 WHERE b.id = $1 AND b.branch_id = $2`,
		id, branchID)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	transfers, err := r.findTransfers(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Transfers = transfers
	return view, nil
}

func (r *BookingReadStore) FindActiveByRoom(ctx context.Context, branchID, roomID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.room_id, rm.room_number, b.customer_name, b.num_occupants,
		        b.status, b.scheduled_check_out, b.created_at
		 FROM guest_bookings b
		 JOIN rooms rm ON rm.id = b.room_id
		 WHERE b.branch_id = $1 AND b.room_id = $2
		   AND b.status IN ('pending_checkin', 'checked_in')
		 ORDER BY b.created_at DESC, b.id DESC`,
		branchID, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active bookings by room", err)
	}
	defer rows.Close()

	return collectBookingListItems(rows)
}

func (r *BookingReadStore) FindByBranchFirstPage(ctx context.Context, branchID uuid.UUID, limit int32, status *string) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.room_id, rm.room_number, b.customer_name, b.num_occupants,
		        b.status, b.scheduled_check_out, b.created_at
		 FROM guest_bookings b
		 JOIN rooms rm ON rm.id = b.room_id
		 WHERE b.branch_id = $1 AND ($2::text IS NULL OR b.status = $2)
		 ORDER BY b.created_at DESC, b.id DESC
		 LIMIT $3`,
		branchID, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}
	defer rows.Close()

	return collectBookingListItems(rows)
}

func (r *BookingReadStore) FindByBranchKeyset(ctx context.Context, branchID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, status *string) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.id, b.room_id, rm.room_number, b.customer_name, b.num_occupants,
		        b.status, b.scheduled_check_out, b.created_at
		 FROM guest_bookings b
		 JOIN rooms rm ON rm.id = b.room_id
		 WHERE b.branch_id = $1 AND ($2::text IS NULL OR b.status = $2)
		   AND (b.created_at, b.id) < ($3, $4)
		 ORDER BY b.created_at DESC, b.id DESC
		 LIMIT $5`,
		branchID, status, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}
	defer rows.Close()

	return collectBookingListItems(rows)
}

func (r *BookingReadStore) findTransfers(ctx context.Context, bookingID uuid.UUID) ([]queries.TransferView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT from_room_id, from_room_number, to_room_id, to_room_number,
		        transferred_by, transferred_at, notes
		 FROM booking_transfers
		 WHERE booking_id = $1
		 ORDER BY transferred_at`,
		bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking transfers", err)
	}
	defer rows.Close()

	transfers := []queries.TransferView{}
	for rows.Next() {
		var (
			tv            queries.TransferView
			transferredAt pgtype.Timestamptz
			notes         pgtype.Text
		)
		err := rows.Scan(&tv.FromRoomID, &tv.FromRoomNumber, &tv.ToRoomID,
			&tv.ToRoomNumber, &tv.TransferredBy, &transferredAt, &notes)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking transfer", err)
		}
		tv.TransferredAt = pgconv.TimeFromPgtype(transferredAt)
		tv.Notes = pgconv.StringPtrFromPgtype(notes)
		transfers = append(transfers, tv)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read booking transfers", rows.Err())
	}
	return transfers, nil
}

func collectBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item              queries.BookingListItem
			scheduledCheckOut pgtype.Timestamptz
			createdAt         pgtype.Timestamptz
		)
		err := rows.Scan(&item.ID, &item.RoomID, &item.RoomNumber, &item.CustomerName,
			&item.NumOccupants, &item.Status, &scheduledCheckOut, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.ScheduledCheckOut = pgconv.TimePtrFromPgtype(scheduledCheckOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", rows.Err())
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view                 queries.BookingView
		scheduledCheckIn     pgtype.Timestamptz
		scheduledCheckOut    pgtype.Timestamptz
		actualCheckIn        pgtype.Timestamptz
		actualCheckOut       pgtype.Timestamptz
		notes                pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&view.ID, &view.BranchID, &view.RoomID, &view.RoomNumber,
		&view.OrderRef, &view.CustomerName, &view.NumOccupants, &view.Status,
		&view.DurationCount, &view.DurationUnit,
		&scheduledCheckIn, &scheduledCheckOut, &actualCheckIn, &actualCheckOut,
		&notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	view.ScheduledCheckIn = pgconv.TimeFromPgtype(scheduledCheckIn)
	view.ScheduledCheckOut = pgconv.TimePtrFromPgtype(scheduledCheckOut)
	view.ActualCheckIn = pgconv.TimePtrFromPgtype(actualCheckIn)
	view.ActualCheckOut = pgconv.TimePtrFromPgtype(actualCheckOut)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
