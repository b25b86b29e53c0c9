package queries

import (
	"context"
	"time"

	"hostelops/internal/infra"
	"hostelops/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingView struct {
	ID                uuid.UUID      `json:"id"`
	BranchID          uuid.UUID      `json:"branch_id"`
	RoomID            uuid.UUID      `json:"room_id"`
	RoomNumber        string         `json:"room_number"`
	OrderRef          string         `json:"order_ref"`
	CustomerName      string         `json:"customer_name"`
	NumOccupants      int32          `json:"num_occupants"`
	Status            string         `json:"status"`
	DurationCount     int32          `json:"duration_count"`
	DurationUnit      string         `json:"duration_unit"`
	ScheduledCheckIn  time.Time      `json:"scheduled_check_in"`
	ScheduledCheckOut *time.Time     `json:"scheduled_check_out,omitempty"`
	ActualCheckIn     *time.Time     `json:"actual_check_in,omitempty"`
	ActualCheckOut    *time.Time     `json:"actual_check_out,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
	Transfers         []TransferView `json:"transfers"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type TransferView struct {
	FromRoomID     uuid.UUID `json:"from_room_id"`
	FromRoomNumber string    `json:"from_room_number"`
	ToRoomID       uuid.UUID `json:"to_room_id"`
	ToRoomNumber   string    `json:"to_room_number"`
	TransferredBy  uuid.UUID `json:"transferred_by"`
	TransferredAt  time.Time `json:"transferred_at"`
	Notes          *string   `json:"notes,omitempty"`
}

type BookingListItem struct {
	ID                uuid.UUID  `json:"id"`
	RoomID            uuid.UUID  `json:"room_id"`
	RoomNumber        string     `json:"room_number"`
	CustomerName      string     `json:"customer_name"`
	NumOccupants      int32      `json:"num_occupants"`
	Status            string     `json:"status"`
	ScheduledCheckOut *time.Time `json:"scheduled_check_out,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, branchID, id uuid.UUID) (*BookingView, error)
	FindActiveByRoom(ctx context.Context, branchID, roomID uuid.UUID) ([]*BookingListItem, error)
	FindByBranchFirstPage(ctx context.Context, branchID uuid.UUID, limit int32, status *string) ([]*BookingListItem, error)
	FindByBranchKeyset(ctx context.Context, branchID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, status *string) ([]*BookingListItem, error)
}

type BookingFilters struct {
	Status *string
}

type BookingQueries interface {
	GetByID(ctx context.Context, branchID, id uuid.UUID) (*BookingView, error)
	ListActiveByRoom(ctx context.Context, branchID, roomID uuid.UUID) ([]*BookingListItem, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, branchID, id uuid.UUID) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, branchID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return bv, nil
}

func (q *bookingQueriesImpl) ListActiveByRoom(ctx context.Context, branchID, roomID uuid.UUID) ([]*BookingListItem, error) {
	return q.repo.FindActiveByRoom(ctx, branchID, roomID)
}

func (q *bookingQueriesImpl) ListByBranch(ctx context.Context, branchID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByBranchFirstPage(ctx, branchID, int32(limit+1), filters.Status)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByBranchKeyset(ctx, branchID, lastCreatedAt, lastID, int32(limit+1), filters.Status)
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
