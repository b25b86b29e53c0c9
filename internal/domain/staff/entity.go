package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff account. Used for authentication and for attributing lifecycle
// actions (transfer history, pins) to an actor.
type Staff struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	branchID     uuid.UUID
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStaff(email Email, passwordHash string, role Role, branchID uuid.UUID) *Staff {
	return &Staff{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		branchID:     branchID,
		isActive:     true,
	}
}

func (s *Staff) ID() uuid.UUID         { return s.id }
func (s *Staff) Email() Email          { return s.email }
func (s *Staff) PasswordHash() string  { return s.passwordHash }
func (s *Staff) Role() Role            { return s.role }
func (s *Staff) BranchID() uuid.UUID   { return s.branchID }
func (s *Staff) LastLogin() *time.Time { return s.lastLogin }
func (s *Staff) IsActive() bool        { return s.isActive }
func (s *Staff) CreatedAt() time.Time  { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time  { return s.updatedAt }
