package repository

import (
	"context"

	"hostelops/internal/domain/booking"
	"hostelops/internal/infra"
	"hostelops/internal/infra/db"
	"hostelops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, branch_id, room_id, order_ref, customer_name, num_occupants,
       scheduled_check_in, scheduled_check_out, actual_check_in, actual_check_out,
       duration_count, duration_unit, status, notes, created_at, updated_at`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// FindByIDForUpdate locks the booking row. Bookings are owned by at most one
// in-flight operation, but the lock makes last-committer-wins explicit.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, branchID, id uuid.UUID) (*booking.GuestBooking, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM guest_bookings WHERE id = $1 AND branch_id = $2 FOR UPDATE`,
		id, branchID)

	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.GuestBooking) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO guest_bookings (id, branch_id, room_id, order_ref, customer_name,
		        num_occupants, scheduled_check_in, scheduled_check_out,
		        duration_count, duration_unit, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.BranchID(), b.RoomID(), b.OrderRef(), b.CustomerName(),
		b.NumOccupants(), b.ScheduledCheckIn(), b.ScheduledCheckOut(),
		b.DurationCount(), b.DurationUnit().String(), b.Status().String(), b.Notes())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return b.ID(), nil
}

// Update persists the lifecycle-mutable fields of a booking.
func (r *BookingRepository) Update(ctx context.Context, b *booking.GuestBooking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE guest_bookings SET room_id = $1, num_occupants = $2, status = $3,
		        scheduled_check_out = $4, actual_check_in = $5, actual_check_out = $6,
		        notes = $7, updated_at = now()
		 WHERE id = $8 AND branch_id = $9`,
		b.RoomID(), b.NumOccupants(), b.Status().String(),
		b.ScheduledCheckOut(), b.ActualCheckIn(), b.ActualCheckOut(),
		b.Notes(), b.ID(), b.BranchID())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// AppendTransfer records one transfer-history row.
func (r *BookingRepository) AppendTransfer(ctx context.Context, bookingID uuid.UUID, t booking.Transfer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO booking_transfers (booking_id, from_room_id, to_room_id,
		        from_room_number, to_room_number, transferred_by, transferred_at, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bookingID, t.FromRoomID, t.ToRoomID, t.FromRoomNumber, t.ToRoomNumber,
		t.ByStaffID, t.At, t.Notes)
	if err != nil {
		return infra.WrapRepoErr("failed to append transfer history", err)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.GuestBooking, error) {
	var (
		id, branchID, roomID     uuid.UUID
		orderRef, customerName   string
		numOccupants             int32
		scheduledCheckIn         pgtype.Timestamptz
		scheduledCheckOut        pgtype.Timestamptz
		actualCheckIn            pgtype.Timestamptz
		actualCheckOut           pgtype.Timestamptz
		durationCount            int32
		durationUnit, status     string
		notes                    pgtype.Text
		createdAt, updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(&id, &branchID, &roomID, &orderRef, &customerName, &numOccupants,
		&scheduledCheckIn, &scheduledCheckOut, &actualCheckIn, &actualCheckOut,
		&durationCount, &durationUnit, &status, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructGuestBooking(
		id, branchID, roomID, orderRef, customerName, numOccupants,
		pgconv.TimeFromPgtype(scheduledCheckIn),
		pgconv.TimePtrFromPgtype(scheduledCheckOut),
		pgconv.TimePtrFromPgtype(actualCheckIn),
		pgconv.TimePtrFromPgtype(actualCheckOut),
		durationCount, booking.DurationUnit(durationUnit), booking.Status(status),
		pgconv.StringPtrFromPgtype(notes),
		nil, // transfer history is loaded by the read side when needed
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
