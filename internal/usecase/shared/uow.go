package shared

import (
	"context"

	"hostelops/internal/domain/booking"
	"hostelops/internal/domain/room"
	"hostelops/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the transactional boundary of the lifecycle engine. Every
// operation that mutates occupancy runs inside Within so the
// read-validate-write sequence holds its row locks to commit.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Staff() StaffRepository
	DB() db.DBTX
}

type RoomRepository interface {
	FindByIDForUpdate(ctx context.Context, branchID, id uuid.UUID) (*room.Room, error)
	FindPairForUpdate(ctx context.Context, branchID, first, second uuid.UUID) (map[uuid.UUID]*room.Room, error)
	Create(ctx context.Context, rm *room.Room) (uuid.UUID, error)
	UpdateOccupancy(ctx context.Context, rm *room.Room) error
	UpdateDetails(ctx context.Context, rm *room.Room) error
}

type BookingRepository interface {
	FindByIDForUpdate(ctx context.Context, branchID, id uuid.UUID) (*booking.GuestBooking, error)
	Create(ctx context.Context, b *booking.GuestBooking) (uuid.UUID, error)
	Update(ctx context.Context, b *booking.GuestBooking) error
	AppendTransfer(ctx context.Context, bookingID uuid.UUID, t booking.Transfer) error
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error
}
