//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hostelops/internal/domain/booking"
	"hostelops/internal/domain/room"
	reqdto "hostelops/internal/handler/dto/request"
	"hostelops/internal/infra"
	"hostelops/internal/infra/db"
	"hostelops/internal/infra/ordersvc"
	"hostelops/internal/pkg/clock"
	"hostelops/internal/pkg/errs"
	"hostelops/internal/pkg/ptr"
	"hostelops/internal/usecase/commands"
	"hostelops/internal/usecase/shared"
	"hostelops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory doubles for the transactional ports. Within runs the closure
// directly, so assertions observe the same aggregates the command mutated.

type fakeRoomRepo struct {
	rooms          map[uuid.UUID]*room.Room
	occupancySaves int
	failOccupancy  bool
}

func (r *fakeRoomRepo) FindByIDForUpdate(_ context.Context, branchID, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.rooms[id]
	if !ok || rm.BranchID() != branchID {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

func (r *fakeRoomRepo) FindPairForUpdate(ctx context.Context, branchID, first, second uuid.UUID) (map[uuid.UUID]*room.Room, error) {
	pair := make(map[uuid.UUID]*room.Room, 2)
	for _, id := range []uuid.UUID{first, second} {
		if rm, err := r.FindByIDForUpdate(ctx, branchID, id); err == nil {
			pair[id] = rm
		}
	}
	return pair, nil
}

func (r *fakeRoomRepo) Create(_ context.Context, rm *room.Room) (uuid.UUID, error) {
	r.rooms[rm.ID()] = rm
	return rm.ID(), nil
}

func (r *fakeRoomRepo) UpdateOccupancy(_ context.Context, _ *room.Room) error {
	if r.failOccupancy {
		return infra.WrapRepoErr("update occupancy", assert.AnError)
	}
	r.occupancySaves++
	return nil
}

func (r *fakeRoomRepo) UpdateDetails(_ context.Context, _ *room.Room) error {
	return nil
}

type fakeBookingRepo struct {
	bookings   map[uuid.UUID]*booking.GuestBooking
	created    []*booking.GuestBooking
	transfers  []booking.Transfer
	failUpdate bool
}

func (b *fakeBookingRepo) FindByIDForUpdate(_ context.Context, branchID, id uuid.UUID) (*booking.GuestBooking, error) {
	bk, ok := b.bookings[id]
	if !ok || bk.BranchID() != branchID {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return bk, nil
}

func (b *fakeBookingRepo) Create(_ context.Context, bk *booking.GuestBooking) (uuid.UUID, error) {
	b.bookings[bk.ID()] = bk
	b.created = append(b.created, bk)
	return bk.ID(), nil
}

func (b *fakeBookingRepo) Update(_ context.Context, _ *booking.GuestBooking) error {
	if b.failUpdate {
		return infra.WrapRepoErr("update booking", assert.AnError)
	}
	return nil
}

func (b *fakeBookingRepo) AppendTransfer(_ context.Context, _ uuid.UUID, t booking.Transfer) error {
	b.transfers = append(b.transfers, t)
	return nil
}

type fakeTx struct {
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
}

func (t *fakeTx) Rooms() shared.RoomRepository       { return t.rooms }
func (t *fakeTx) Bookings() shared.BookingRepository { return t.bookings }
func (t *fakeTx) Staff() shared.StaffRepository      { return nil }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeUoW struct {
	tx *fakeTx
	// commitFailures simulates serialization failures at commit time: the
	// closure succeeds, the commit is rejected, and Within runs it again.
	commitFailures int
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for {
		if err := fn(ctx, u.tx); err != nil {
			return err
		}
		if u.commitFailures == 0 {
			return nil
		}
		u.commitFailures--
	}
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeOrderClient struct {
	orderRef  string
	createErr error
	created   []ordersvc.ExtensionOrderRequest
	voided    []string
}

func (c *fakeOrderClient) CreateExtensionOrder(_ context.Context, req ordersvc.ExtensionOrderRequest) (string, error) {
	if c.createErr != nil {
		return "", c.createErr
	}
	c.created = append(c.created, req)
	return c.orderRef, nil
}

func (c *fakeOrderClient) VoidOrder(_ context.Context, orderRef string) error {
	c.voided = append(c.voided, orderRef)
	return nil
}

type lifecycleFixture struct {
	branchID uuid.UUID
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
	orders   *fakeOrderClient
	clock    *clock.MockClock
	uow      *fakeUoW
	commands commands.BookingCommands
}

func newLifecycleFixture() *lifecycleFixture {
	rooms := &fakeRoomRepo{rooms: make(map[uuid.UUID]*room.Room)}
	bookings := &fakeBookingRepo{bookings: make(map[uuid.UUID]*booking.GuestBooking)}
	orders := &fakeOrderClient{orderRef: "EXT-1001"}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC))
	uow := &fakeUoW{tx: &fakeTx{rooms: rooms, bookings: bookings}}

	return &lifecycleFixture{
		branchID: uuid.New(),
		rooms:    rooms,
		bookings: bookings,
		orders:   orders,
		clock:    clk,
		uow:      uow,
		commands: commands.NewBookingCommands(uow, orders, clk),
	}
}

func (f *lifecycleFixture) addRoom(current, max int32) *room.Room {
	rm := builder.NewRoomBuilder().
		WithBranchID(f.branchID).
		WithCapacity(current, max).
		BuildReconstructed()
	f.rooms.rooms[rm.ID()] = rm
	return rm
}

func (f *lifecycleFixture) addBooking(rm *room.Room, occupants int32, mutate ...func(*builder.BookingBuilder)) *booking.GuestBooking {
	bb := builder.NewBookingBuilder().
		WithBranchID(f.branchID).
		WithRoomID(rm.ID()).
		WithNumOccupants(occupants)
	for _, m := range mutate {
		bb.With(m)
	}
	bk := bb.BuildReconstructed()
	f.bookings.bookings[bk.ID()] = bk
	return bk
}

func createRequest(roomID uuid.UUID, occupants int32) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:           roomID,
		OrderRef:         "ORD-42",
		CustomerName:     "Suzuki Hana",
		NumOccupants:     occupants,
		ScheduledCheckIn: time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		DurationCount:    2,
		DurationUnit:     "night",
	}
}

func TestAttachToOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("claims headcount on the room at attach time", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(1, 4)

		id, err := f.commands.AttachToOrder(ctx, createRequest(rm.ID(), 2), f.branchID)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		assert.Equal(t, int32(3), rm.CurrentOccupants())
		require.Len(t, f.bookings.created, 1)
		assert.Equal(t, booking.StatusPendingCheckIn, f.bookings.created[0].Status())
		assert.Equal(t, 1, f.rooms.occupancySaves)
	})

	t.Run("attach filling the room exactly succeeds", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)

		_, err := f.commands.AttachToOrder(ctx, createRequest(rm.ID(), 2), f.branchID)
		require.NoError(t, err)
		assert.Equal(t, room.StatusOccupied, rm.Status().Derived())
	})

	t.Run("overbooking attempt is refused", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(3, 4)

		_, err := f.commands.AttachToOrder(ctx, createRequest(rm.ID(), 2), f.branchID)
		require.True(t, errs.Is(err, commands.ErrCapacityExceeded))

		assert.Equal(t, int32(3), rm.CurrentOccupants())
		assert.Empty(t, f.bookings.created)
	})

	t.Run("inactive room refuses attach", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := builder.NewRoomBuilder().
			WithBranchID(f.branchID).
			WithCapacity(0, 4).
			AsInactive().
			BuildReconstructed()
		f.rooms.rooms[rm.ID()] = rm

		_, err := f.commands.AttachToOrder(ctx, createRequest(rm.ID(), 1), f.branchID)
		require.True(t, errs.Is(err, commands.ErrRoomUnavailable))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newLifecycleFixture()

		_, err := f.commands.AttachToOrder(ctx, createRequest(uuid.New(), 1), f.branchID)
		require.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})

	t.Run("room in another branch is invisible", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := builder.NewRoomBuilder().WithBranchID(uuid.New()).WithCapacity(0, 4).BuildReconstructed()
		f.rooms.rooms[rm.ID()] = rm

		_, err := f.commands.AttachToOrder(ctx, createRequest(rm.ID(), 1), f.branchID)
		require.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})

	t.Run("invalid payload never opens a transaction", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(0, 4)

		req := createRequest(rm.ID(), 1)
		req.OrderRef = "  "
		_, err := f.commands.AttachToOrder(ctx, req, f.branchID)
		require.True(t, errs.Is(err, commands.ErrInvalidInput))
		assert.Equal(t, int32(0), rm.CurrentOccupants())
	})
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("without revision the room count is untouched", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2)

		err := f.commands.CheckIn(ctx, f.branchID, bk.ID(), reqdto.CheckInRequest{})
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCheckedIn, bk.Status())
		assert.Equal(t, int32(2), rm.CurrentOccupants())
		assert.Equal(t, 0, f.rooms.occupancySaves)
		require.NotNil(t, bk.ActualCheckIn())
		assert.Equal(t, f.clock.Now(), *bk.ActualCheckIn())
	})

	t.Run("upward revision adds only the extra guests", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2)

		revised := int32(4)
		err := f.commands.CheckIn(ctx, f.branchID, bk.ID(), reqdto.CheckInRequest{RevisedOccupants: &revised})
		require.NoError(t, err)

		assert.Equal(t, int32(4), rm.CurrentOccupants())
		assert.Equal(t, int32(4), bk.NumOccupants())
		assert.Equal(t, 1, f.rooms.occupancySaves)
	})

	t.Run("downward revision releases the difference", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(3, 4)
		bk := f.addBooking(rm, 3)

		revised := int32(1)
		err := f.commands.CheckIn(ctx, f.branchID, bk.ID(), reqdto.CheckInRequest{RevisedOccupants: &revised})
		require.NoError(t, err)

		assert.Equal(t, int32(1), rm.CurrentOccupants())
		assert.Equal(t, int32(1), bk.NumOccupants())
	})

	t.Run("revision overflowing the room is refused", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(3, 4)
		bk := f.addBooking(rm, 3)

		revised := int32(5)
		err := f.commands.CheckIn(ctx, f.branchID, bk.ID(), reqdto.CheckInRequest{RevisedOccupants: &revised})
		require.True(t, errs.Is(err, commands.ErrCapacityExceeded))
	})

	t.Run("double check-in", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2, func(b *builder.BookingBuilder) {
			b.AsCheckedIn(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
		})

		err := f.commands.CheckIn(ctx, f.branchID, bk.ID(), reqdto.CheckInRequest{})
		require.True(t, errs.Is(err, commands.ErrInvalidTransition))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newLifecycleFixture()

		err := f.commands.CheckIn(ctx, f.branchID, uuid.New(), reqdto.CheckInRequest{})
		require.True(t, errs.Is(err, commands.ErrBookingNotFound))
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()
	checkedIn := func(b *builder.BookingBuilder) {
		b.AsCheckedIn(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	}

	t.Run("moves the party between rooms atomically", func(t *testing.T) {
		f := newLifecycleFixture()
		fromRoom := f.addRoom(3, 4)
		toRoom := f.addRoom(1, 4)
		bk := f.addBooking(fromRoom, 3, checkedIn)

		err := f.commands.Transfer(ctx, f.branchID, bk.ID(), staffID, reqdto.TransferRequest{ToRoomID: toRoom.ID()})
		require.NoError(t, err)

		assert.Equal(t, int32(0), fromRoom.CurrentOccupants())
		assert.Equal(t, int32(4), toRoom.CurrentOccupants())
		assert.Equal(t, toRoom.ID(), bk.RoomID())

		require.Len(t, f.bookings.transfers, 1)
		entry := f.bookings.transfers[0]
		assert.Equal(t, fromRoom.ID(), entry.FromRoomID)
		assert.Equal(t, toRoom.ID(), entry.ToRoomID)
		assert.Equal(t, staffID, entry.ByStaffID)
		assert.Equal(t, f.clock.Now(), entry.At)
	})

	t.Run("target without enough free capacity", func(t *testing.T) {
		f := newLifecycleFixture()
		fromRoom := f.addRoom(3, 4)
		toRoom := f.addRoom(2, 4)
		bk := f.addBooking(fromRoom, 3, checkedIn)

		err := f.commands.Transfer(ctx, f.branchID, bk.ID(), staffID, reqdto.TransferRequest{ToRoomID: toRoom.ID()})
		require.True(t, errs.Is(err, commands.ErrCapacityExceeded))

		assert.Equal(t, int32(3), fromRoom.CurrentOccupants())
		assert.Equal(t, int32(2), toRoom.CurrentOccupants())
		assert.Equal(t, fromRoom.ID(), bk.RoomID())
		assert.Empty(t, f.bookings.transfers)
	})

	t.Run("pinned target refuses the transfer", func(t *testing.T) {
		f := newLifecycleFixture()
		fromRoom := f.addRoom(2, 4)
		toRoom := builder.NewRoomBuilder().
			WithBranchID(f.branchID).
			WithCapacity(0, 4).
			WithPinned("maintenance").
			BuildReconstructed()
		f.rooms.rooms[toRoom.ID()] = toRoom
		bk := f.addBooking(fromRoom, 2, checkedIn)

		err := f.commands.Transfer(ctx, f.branchID, bk.ID(), staffID, reqdto.TransferRequest{ToRoomID: toRoom.ID()})
		require.True(t, errs.Is(err, commands.ErrRoomUnavailable))
	})

	t.Run("transfer to the current room", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2, checkedIn)

		err := f.commands.Transfer(ctx, f.branchID, bk.ID(), staffID, reqdto.TransferRequest{ToRoomID: rm.ID()})
		require.True(t, errs.Is(err, commands.ErrInvalidInput))
	})

	t.Run("pending booking cannot transfer", func(t *testing.T) {
		f := newLifecycleFixture()
		fromRoom := f.addRoom(2, 4)
		toRoom := f.addRoom(0, 4)
		bk := f.addBooking(fromRoom, 2)

		err := f.commands.Transfer(ctx, f.branchID, bk.ID(), staffID, reqdto.TransferRequest{ToRoomID: toRoom.ID()})
		require.True(t, errs.Is(err, commands.ErrInvalidTransition))
	})

	t.Run("status is checked before the target's capacity", func(t *testing.T) {
		f := newLifecycleFixture()
		fromRoom := f.addRoom(2, 4)
		toRoom := f.addRoom(4, 4)
		bk := f.addBooking(fromRoom, 2)

		err := f.commands.Transfer(ctx, f.branchID, bk.ID(), staffID, reqdto.TransferRequest{ToRoomID: toRoom.ID()})
		require.True(t, errs.Is(err, commands.ErrInvalidTransition))
		assert.False(t, errs.Is(err, commands.ErrCapacityExceeded))
	})

	t.Run("missing target room", func(t *testing.T) {
		f := newLifecycleFixture()
		fromRoom := f.addRoom(2, 4)
		bk := f.addBooking(fromRoom, 2, checkedIn)

		err := f.commands.Transfer(ctx, f.branchID, bk.ID(), staffID, reqdto.TransferRequest{ToRoomID: uuid.New()})
		require.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})
}

func TestExtendStay(t *testing.T) {
	ctx := context.Background()
	checkedIn := func(b *builder.BookingBuilder) {
		b.AsCheckedIn(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	}

	t.Run("bills the room rate per extra duration unit", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2, checkedIn)

		newCheckOut := time.Date(2025, 6, 5, 11, 0, 0, 0, time.UTC)
		result, err := f.commands.ExtendStay(ctx, f.branchID, bk.ID(), reqdto.ExtendStayRequest{
			ExtraDuration: 3,
			NewCheckOut:   &newCheckOut,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "EXT-1001", result.OrderRef)
		assert.Equal(t, int64(7500), result.TotalCharge)
		require.NotNil(t, bk.ScheduledCheckOut())
		assert.Equal(t, newCheckOut, *bk.ScheduledCheckOut())

		assert.Equal(t, int32(2), rm.CurrentOccupants())
		assert.Equal(t, 0, f.rooms.occupancySaves)

		require.Len(t, f.orders.created, 1)
		created := f.orders.created[0]
		assert.Equal(t, bk.OrderRef(), created.ParentOrder)
		assert.Equal(t, int32(3), created.ExtraDuration)
		assert.Equal(t, int64(2500), created.UnitCostCents)
		assert.Empty(t, f.orders.voided)
	})

	t.Run("order service failure aborts without billing", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2, checkedIn)
		f.orders.createErr = ordersvc.ErrOrderRequestFailed

		_, err := f.commands.ExtendStay(ctx, f.branchID, bk.ID(), reqdto.ExtendStayRequest{ExtraDuration: 1})
		require.True(t, errs.Is(err, commands.ErrOrderServiceFailed))
		assert.Empty(t, f.orders.voided)
	})

	t.Run("created order is voided when the booking write fails", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2, checkedIn)
		f.bookings.failUpdate = true

		_, err := f.commands.ExtendStay(ctx, f.branchID, bk.ID(), reqdto.ExtendStayRequest{ExtraDuration: 2})
		require.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))

		require.Len(t, f.orders.voided, 1)
		assert.Equal(t, "EXT-1001", f.orders.voided[0])
	})

	t.Run("commit retry reuses the order created on the first attempt", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2, checkedIn)
		f.uow.commitFailures = 1

		result, err := f.commands.ExtendStay(ctx, f.branchID, bk.ID(), reqdto.ExtendStayRequest{ExtraDuration: 2})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "EXT-1001", result.OrderRef)
		assert.Len(t, f.orders.created, 1)
		assert.Empty(t, f.orders.voided)
	})

	t.Run("pending booking cannot extend", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2)

		_, err := f.commands.ExtendStay(ctx, f.branchID, bk.ID(), reqdto.ExtendStayRequest{ExtraDuration: 1})
		require.True(t, errs.Is(err, commands.ErrInvalidTransition))
		assert.Empty(t, f.orders.created)
	})
}

func TestDepart(t *testing.T) {
	ctx := context.Background()
	checkedIn := func(b *builder.BookingBuilder) {
		b.AsCheckedIn(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	}

	t.Run("releases the party's headcount", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(3, 4)
		bk := f.addBooking(rm, 3, checkedIn)

		err := f.commands.Depart(ctx, f.branchID, bk.ID(), ptr.To("left early"))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusDeparted, bk.Status())
		assert.Equal(t, int32(0), rm.CurrentOccupants())
		require.NotNil(t, bk.Notes())
		assert.Equal(t, "left early", *bk.Notes())
		require.NotNil(t, bk.ActualCheckOut())
		assert.Equal(t, f.clock.Now(), *bk.ActualCheckOut())
	})

	t.Run("departure floors the room at zero when counts drifted", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 3, checkedIn)

		err := f.commands.Depart(ctx, f.branchID, bk.ID(), nil)
		require.NoError(t, err)
		assert.Equal(t, int32(0), rm.CurrentOccupants())
	})

	t.Run("pending booking cannot depart", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)
		bk := f.addBooking(rm, 2)

		err := f.commands.Depart(ctx, f.branchID, bk.ID(), nil)
		require.True(t, errs.Is(err, commands.ErrInvalidTransition))
		assert.Equal(t, booking.StatusPendingCheckIn, bk.Status())
	})
}

func TestFreeRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("lowers the count without touching bookings", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(3, 4)
		bk := f.addBooking(rm, 3, func(b *builder.BookingBuilder) {
			b.AsCheckedIn(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
		})

		err := f.commands.FreeRoom(ctx, f.branchID, rm.ID(), 2)
		require.NoError(t, err)

		assert.Equal(t, int32(1), rm.CurrentOccupants())
		assert.Equal(t, int32(3), bk.NumOccupants())
		assert.Equal(t, booking.StatusCheckedIn, bk.Status())
	})

	t.Run("clamps at zero", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(1, 4)

		err := f.commands.FreeRoom(ctx, f.branchID, rm.ID(), 5)
		require.NoError(t, err)
		assert.Equal(t, int32(0), rm.CurrentOccupants())
	})

	t.Run("zero people leaving is rejected up front", func(t *testing.T) {
		f := newLifecycleFixture()
		rm := f.addRoom(2, 4)

		err := f.commands.FreeRoom(ctx, f.branchID, rm.ID(), 0)
		require.True(t, errs.Is(err, commands.ErrInvalidInput))
		assert.Equal(t, int32(2), rm.CurrentOccupants())
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newLifecycleFixture()

		err := f.commands.FreeRoom(ctx, f.branchID, uuid.New(), 1)
		require.True(t, errs.Is(err, commands.ErrRoomNotFound))
	})
}
