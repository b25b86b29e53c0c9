package jwt

import (
	"errors"
	"time"

	"hostelops/internal/domain/staff"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// BranchID rides in the claims so every downstream call can be tenant-scoped
// without another lookup.
type Claims struct {
	StaffID   uuid.UUID `json:"staff_id"`
	BranchID  uuid.UUID `json:"branch_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
}

func NewService(secretKey string, accessDuration, refreshDuration time.Duration) *Service {
	return &Service{
		secretKey:       []byte(secretKey),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
	}
}

func (s *Service) GenerateAccessToken(staffID, branchID uuid.UUID, role staff.Role) (string, error) {
	return s.generate(staffID, branchID, role, TokenTypeAccess, s.accessDuration)
}

func (s *Service) GenerateRefreshToken(staffID, branchID uuid.UUID, role staff.Role) (string, error) {
	return s.generate(staffID, branchID, role, TokenTypeRefresh, s.refreshDuration)
}

func (s *Service) generate(staffID, branchID uuid.UUID, role staff.Role, tokenType TokenType, d time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		StaffID:   staffID,
		BranchID:  branchID,
		Role:      role.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
