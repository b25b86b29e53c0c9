package readstore

import (
	"context"

	"hostelops/internal/infra"
	"hostelops/internal/infra/db"
	"hostelops/internal/pkg/pgconv"
	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: dbtx}
}

func (r *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, branch_id, email, role, is_active FROM staff WHERE id = $1`,
		id)

	var view queries.AuthorizedStaffView
	err := row.Scan(&view.ID, &view.BranchID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by ID", err)
	}
	return &view, nil
}

func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedStaffView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, branch_id, email, role, is_active, password_hash
		 FROM staff WHERE email = $1 AND is_active = true`,
		email)

	var (
		view         queries.AuthorizedStaffView
		passwordHash string
	)
	err := row.Scan(&view.ID, &view.BranchID, &view.Email, &view.Role,
		&view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find staff by email", err)
	}
	return &view, passwordHash, nil
}
