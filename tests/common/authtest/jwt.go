//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hostelops/internal/domain/staff"
	"hostelops/internal/pkg/config"
	"hostelops/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID, branchID uuid.UUID, role staff.Role) string {
	t.Helper()
	duration, refreshDuration := h.cfg.Durations()
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration)
	token, err := service.GenerateAccessToken(staffID, branchID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID, branchID uuid.UUID, role staff.Role) string {
	t.Helper()
	_, refreshDuration := h.cfg.Durations()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refreshDuration)
	token, err := service.GenerateAccessToken(staffID, branchID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
