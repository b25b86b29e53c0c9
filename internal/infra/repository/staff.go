package repository

import (
	"context"

	"hostelops/internal/infra"
	"hostelops/internal/infra/db"

	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE staff SET last_login = now(), updated_at = now() WHERE id = $1`,
		staffID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
