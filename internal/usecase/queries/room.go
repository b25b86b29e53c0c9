package queries

import (
	"context"
	"time"

	"hostelops/internal/infra"
	"hostelops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound  = errs.New("room not found")
	ErrInvalidCursor = errs.New("invalid cursor")
)

// Read models (DTO for read side)
type RoomView struct {
	ID               uuid.UUID `json:"id"`
	BranchID         uuid.UUID `json:"branch_id"`
	RoomNumber       string    `json:"room_number"`
	Category         string    `json:"category"`
	FloorSection     string    `json:"floor_section"`
	Status           string    `json:"status"`
	Pinned           bool      `json:"pinned"`
	CurrentOccupants int32     `json:"current_occupants"`
	MaxOccupants     int32     `json:"max_occupants"`
	CostAmount       int64     `json:"cost_amount"`
	CostDuration     string    `json:"cost_duration"`
	Benefits         []string  `json:"benefits"`
	MediaRef         *string   `json:"media_ref,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RoomListItem struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       string    `json:"room_number"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	CurrentOccupants int32     `json:"current_occupants"`
	MaxOccupants     int32     `json:"max_occupants"`
	CostAmount       int64     `json:"cost_amount"`
	CostDuration     string    `json:"cost_duration"`
	CreatedAt        time.Time `json:"created_at"`
}

type RoomFilters struct {
	Status *string
}

type RoomReadStore interface {
	FindByID(ctx context.Context, branchID, id uuid.UUID) (*RoomView, error)
	FindByBranchFirstPage(ctx context.Context, branchID uuid.UUID, limit int32, status *string) ([]*RoomListItem, error)
	FindByBranchKeyset(ctx context.Context, branchID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, status *string) ([]*RoomListItem, error)
}

type RoomQueries interface {
	GetByID(ctx context.Context, branchID, id uuid.UUID) (*RoomView, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID, filters RoomFilters, cursor *Cursor, limit int) ([]*RoomListItem, *Cursor, error)
}

type roomQueriesImpl struct {
	repo RoomReadStore
}

func NewRoomQueries(repo RoomReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, branchID, id uuid.UUID) (*RoomView, error) {
	rv, err := q.repo.FindByID(ctx, branchID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *roomQueriesImpl) ListByBranch(ctx context.Context, branchID uuid.UUID, filters RoomFilters, cursor *Cursor, limit int) ([]*RoomListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*RoomListItem
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
