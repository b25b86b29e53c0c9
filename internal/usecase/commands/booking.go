package commands

import (
	"context"
	"errors"
	"log/slog"

	"hostelops/internal/domain/booking"
	"hostelops/internal/domain/room"
	reqdto "hostelops/internal/handler/dto/request"
	"hostelops/internal/infra"
	"hostelops/internal/infra/ordersvc"
	"hostelops/internal/pkg/clock"
	"hostelops/internal/pkg/errs"
	"hostelops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidTransition       = errs.New("invalid booking transition")
	ErrCapacityExceeded        = errs.New("room capacity exceeded")
	ErrRoomUnavailable         = errs.New("room unavailable")
	ErrInvalidInput            = errs.New("invalid input")
	ErrOrderServiceFailed      = errs.New("order service failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ExtendStayResult struct {
	OrderRef    string
	TotalCharge int64
}

type BookingCommands interface {
	AttachToOrder(ctx context.Context, req reqdto.CreateBookingRequest, branchID uuid.UUID) (uuid.UUID, error)
	CheckIn(ctx context.Context, branchID, bookingID uuid.UUID, req reqdto.CheckInRequest) error
	Transfer(ctx context.Context, branchID, bookingID, staffID uuid.UUID, req reqdto.TransferRequest) error
	ExtendStay(ctx context.Context, branchID, bookingID uuid.UUID, req reqdto.ExtendStayRequest) (*ExtendStayResult, error)
	Depart(ctx context.Context, branchID, bookingID uuid.UUID, notes *string) error
	FreeRoom(ctx context.Context, branchID, roomID uuid.UUID, peopleLeaving int32) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	orders ordersvc.Client
	clock  clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, orders ordersvc.Client, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		orders: orders,
		clock:  clk,
	}
}

// AttachToOrder creates the pending booking for an order's room line item and
// claims the headcount on the room immediately, so a concurrent attach near
// full capacity is refused instead of overbooking.
func (c *bookingCommandsImpl) AttachToOrder(ctx context.Context, req reqdto.CreateBookingRequest, branchID uuid.UUID) (uuid.UUID, error) {
	newBooking, err := req.ToDomain(branchID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, req.RoomID)
		if err != nil {
			return mapRoomRepoErr(err)
		}
		if !rm.IsActive() {
			return errs.Mark(room.ErrRoomInactive, ErrRoomUnavailable)
		}

		if err := rm.AddOccupants(newBooking.NumOccupants()); err != nil {
			return errs.Mark(err, ErrCapacityExceeded)
		}

		if _, err := tx.Bookings().Create(ctx, newBooking); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Rooms().UpdateOccupancy(ctx, rm); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return newBooking.ID(), nil
}

// CheckIn marks arrival. A revised headcount adjusts the room by the delta
// only; the original party was already counted at attach time.
func (c *bookingCommandsImpl) CheckIn(ctx context.Context, branchID, bookingID uuid.UUID, req reqdto.CheckInRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, branchID, bookingID)
		if err != nil {
			return mapBookingRepoErr(err)
		}
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, b.RoomID())
		if err != nil {
			return mapRoomRepoErr(err)
		}

		delta, err := b.CheckIn(c.clock.Now(), req.RevisedOccupants)
		if err != nil {
			return mapDomainErr(err)
		}

		switch {
		case delta > 0:
			if err := rm.AddOccupants(delta); err != nil {
				return errs.Mark(err, ErrCapacityExceeded)
			}
		case delta < 0:
			rm.RemoveOccupants(-delta)
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if delta != 0 {
			if err := tx.Rooms().UpdateOccupancy(ctx, rm); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

// Transfer moves a checked-in booking between rooms. Both rooms are locked in
// one statement with a fixed ordering, then updated in the same transaction,
// so the party is never in zero or two rooms.
func (c *bookingCommandsImpl) Transfer(ctx context.Context, branchID, bookingID, staffID uuid.UUID, req reqdto.TransferRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, branchID, bookingID)
		if err != nil {
			return mapBookingRepoErr(err)
		}
		if err := b.CanTransfer(); err != nil {
			return mapDomainErr(err)
		}
		if b.RoomID() == req.ToRoomID {
			return errs.Mark(booking.ErrSameRoom, ErrInvalidInput)
		}

		rooms, err := tx.Rooms().FindPairForUpdate(ctx, branchID, b.RoomID(), req.ToRoomID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		fromRoom, ok := rooms[b.RoomID()]
		if !ok {
			return ErrRoomNotFound
		}
		toRoom, ok := rooms[req.ToRoomID]
		if !ok {
			return ErrRoomNotFound
		}

		if err := toRoom.CheckTransferTarget(b.NumOccupants()); err != nil {
			return mapDomainErr(err)
		}

		entry := booking.Transfer{
			FromRoomID:     fromRoom.ID(),
			ToRoomID:       toRoom.ID(),
			FromRoomNumber: fromRoom.Number(),
			ToRoomNumber:   toRoom.Number(),
			ByStaffID:      staffID,
			At:             c.clock.Now(),
			Notes:          req.Notes,
		}
		if err := b.TransferTo(toRoom.ID(), entry); err != nil {
			return mapDomainErr(err)
		}

		fromRoom.RemoveOccupants(b.NumOccupants())
		if err := toRoom.AddOccupants(b.NumOccupants()); err != nil {
			return errs.Mark(err, ErrCapacityExceeded)
		}

		if err := tx.Rooms().UpdateOccupancy(ctx, fromRoom); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Rooms().UpdateOccupancy(ctx, toRoom); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Bookings().AppendTransfer(ctx, b.ID(), entry); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ExtendStay bills extra duration through the order service and moves the
// scheduled check-out. Occupancy is untouched: the guests are already counted.
// The extension order is created before commit and voided if the commit fails.
func (c *bookingCommandsImpl) ExtendStay(ctx context.Context, branchID, bookingID uuid.UUID, req reqdto.ExtendStayRequest) (*ExtendStayResult, error) {
	var result *ExtendStayResult
	var createdOrderRef string

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, branchID, bookingID)
		if err != nil {
			return mapBookingRepoErr(err)
		}
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, b.RoomID())
		if err != nil {
			return mapRoomRepoErr(err)
		}

		if err := b.ExtendStay(req.NewCheckOut); err != nil {
			return mapDomainErr(err)
		}

		totalCharge := rm.CostAmount() * int64(req.ExtraDuration)
		// Within retries the closure on serialization failures. The order
		// already exists after the first attempt, so create at most one.
		if createdOrderRef == "" {
			orderRef, err := c.orders.CreateExtensionOrder(ctx, ordersvc.ExtensionOrderRequest{
				BookingID:     b.ID().String(),
				BranchID:      branchID.String(),
				RoomID:        rm.ID().String(),
				ParentOrder:   b.OrderRef(),
				ExtraDuration: req.ExtraDuration,
				DurationUnit:  b.DurationUnit().String(),
				UnitCostCents: rm.CostAmount(),
			})
			if err != nil {
				return errs.Mark(err, ErrOrderServiceFailed)
			}
			createdOrderRef = orderRef
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &ExtendStayResult{OrderRef: createdOrderRef, TotalCharge: totalCharge}
		return nil
	})
	if err != nil {
		if createdOrderRef != "" {
			if voidErr := c.orders.VoidOrder(ctx, createdOrderRef); voidErr != nil {
				slog.Error("failed to void extension order after rollback",
					"order_ref", createdOrderRef, "error", voidErr.Error())
			}
		}
		return nil, err
	}
	return result, nil
}

// Depart releases the booking's headcount from its room, floored at zero.
func (c *bookingCommandsImpl) Depart(ctx context.Context, branchID, bookingID uuid.UUID, notes *string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, branchID, bookingID)
		if err != nil {
			return mapBookingRepoErr(err)
		}
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, b.RoomID())
		if err != nil {
			return mapRoomRepoErr(err)
		}

		if err := b.Depart(c.clock.Now()); err != nil {
			return mapDomainErr(err)
		}
		if notes != nil {
			b.SetNotes(notes)
		}

		rm.RemoveOccupants(b.NumOccupants())

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Rooms().UpdateOccupancy(ctx, rm); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// FreeRoom is the room-level partial checkout: it lowers the occupant count
// without touching any booking row. It can desynchronize the booking sum,
// which the reconciliation view surfaces instead of repairing.
func (c *bookingCommandsImpl) FreeRoom(ctx context.Context, branchID, roomID uuid.UUID, peopleLeaving int32) error {
	if peopleLeaving < 1 {
		return errs.Mark(errs.New("people_leaving must be at least 1"), ErrInvalidInput)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, roomID)
		if err != nil {
			return mapRoomRepoErr(err)
		}

		removed := rm.RemoveOccupants(peopleLeaving)
		if removed < peopleLeaving {
			slog.Warn("free room clamped at zero occupants",
				"room_id", roomID, "requested", peopleLeaving, "removed", removed)
		}

		if err := tx.Rooms().UpdateOccupancy(ctx, rm); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func mapRoomRepoErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrRoomNotFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func mapBookingRepoErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrBookingNotFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	case errors.Is(err, booking.ErrSameRoom), errors.Is(err, booking.ErrInvalidHeadcount):
		return errs.Mark(err, ErrInvalidInput)
	case errors.Is(err, room.ErrCapacityExceeded):
		return errs.Mark(err, ErrCapacityExceeded)
	case errors.Is(err, room.ErrRoomUnavailable), errors.Is(err, room.ErrRoomInactive):
		return errs.Mark(err, ErrRoomUnavailable)
	default:
		return errs.Mark(err, ErrInvalidInput)
	}
}
