package queries

import (
	"context"

	"github.com/google/uuid"

	"hostelops/internal/infra"
	"hostelops/internal/pkg/errs"
)

var (
	ErrStaffNotFound = errs.New("staff not found")
	ErrStaffInactive = errs.New("staff inactive")
)

type AuthorizedStaffView struct {
	ID       uuid.UUID `json:"id"`
	BranchID uuid.UUID `json:"branch_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type StaffQueries interface {
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error)
}

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
	// FindByEmail also returns the stored password hash for credential checks
	FindByEmail(ctx context.Context, email string) (*AuthorizedStaffView, string, error)
}

type staffQueriesImpl struct {
	readStore StaffReadStore
}

func NewStaffQueries(readStore StaffReadStore) StaffQueries {
	return &staffQueriesImpl{
		readStore: readStore,
	}
}

func (q *staffQueriesImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error) {
	staff, err := q.readStore.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if !staff.IsActive {
		return nil, ErrStaffInactive
	}

	return staff, nil
}
