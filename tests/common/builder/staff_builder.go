//go:build unit || e2e

package builder

import (
	"hostelops/internal/domain/staff"
	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	BranchID     uuid.UUID
	IsActive     bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "front_desk",
		BranchID:     uuid.New(),
		IsActive:     true,
	}
}

func (s *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StaffBuilder) BuildDomain() (*staff.Staff, error) {
	email, err := staff.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(s.Role)
	if err != nil {
		return nil, err
	}

	return staff.NewStaff(email, s.PasswordHash, role, s.BranchID), nil
}

func (s *StaffBuilder) BuildReadModel() *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:       uuid.New(),
		BranchID: s.BranchID,
		Email:    s.Email,
		Role:     s.Role,
		IsActive: s.IsActive,
	}
}

// Fluent builder methods
func (s *StaffBuilder) WithEmail(email string) *StaffBuilder {
	s.Email = email
	return s
}

func (s *StaffBuilder) WithRole(role string) *StaffBuilder {
	s.Role = role
	return s
}

func (s *StaffBuilder) WithBranchID(branchID uuid.UUID) *StaffBuilder {
	s.BranchID = branchID
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}
