package commands

import (
	"context"

	"hostelops/internal/domain/room"
	reqdto "hostelops/internal/handler/dto/request"
	"hostelops/internal/infra"
	"hostelops/internal/pkg/errs"
	"hostelops/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateRoomNumber = errs.New("room number already exists in branch")

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest, branchID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, branchID, roomID uuid.UUID, req reqdto.UpdateRoomRequest) error
	Deactivate(ctx context.Context, branchID, roomID uuid.UUID) error
	Pin(ctx context.Context, branchID, roomID uuid.UUID, status string) error
	Unpin(ctx context.Context, branchID, roomID uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest, branchID uuid.UUID) (uuid.UUID, error) {
	newRoom, err := req.ToDomain(branchID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().Create(ctx, newRoom); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateRoomNumber)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return newRoom.ID(), nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, branchID, roomID uuid.UUID, req reqdto.UpdateRoomRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, roomID)
		if err != nil {
			return mapRoomRepoErr(err)
		}

		var costDuration *room.CostDuration
		if req.CostDuration != nil {
			d, err := room.NewCostDuration(*req.CostDuration)
			if err != nil {
				return errs.Mark(err, ErrInvalidInput)
			}
			costDuration = &d
		}

		err = rm.UpdateDetails(req.Category, req.FloorSection, req.CostAmount,
			costDuration, req.Benefits, req.MediaRef)
		if err != nil {
			return errs.Mark(err, ErrInvalidInput)
		}

		if err := tx.Rooms().UpdateDetails(ctx, rm); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *roomCommandsImpl) Deactivate(ctx context.Context, branchID, roomID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, roomID)
		if err != nil {
			return mapRoomRepoErr(err)
		}

		rm.Deactivate()

		if err := tx.Rooms().UpdateDetails(ctx, rm); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// Pin sets the staff-authoritative status. The lifecycle engine never writes
// this variant; it survives every occupancy mutation until Unpin.
func (c *roomCommandsImpl) Pin(ctx context.Context, branchID, roomID uuid.UUID, status string) error {
	pinned, err := room.NewPinnedStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, roomID)
		if err != nil {
			return mapRoomRepoErr(err)
		}

		if err := rm.Pin(pinned); err != nil {
			return errs.Mark(err, ErrInvalidInput)
		}

		if err := tx.Rooms().UpdateOccupancy(ctx, rm); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *roomCommandsImpl) Unpin(ctx context.Context, branchID, roomID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByIDForUpdate(ctx, branchID, roomID)
		if err != nil {
			return mapRoomRepoErr(err)
		}

		rm.Unpin()

		if err := tx.Rooms().UpdateOccupancy(ctx, rm); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
