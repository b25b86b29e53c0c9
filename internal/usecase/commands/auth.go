package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hostelops/internal/domain/staff"
	reqdto "hostelops/internal/handler/dto/request"
	"hostelops/internal/pkg/errs"
	"hostelops/internal/pkg/jwt"
	"hostelops/internal/pkg/password"
	"hostelops/internal/usecase/queries"
	"hostelops/internal/usecase/shared"
)

var (
	ErrStaffNotFound        = errs.New("staff not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrStaffInactive        = errs.New("staff inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	StaffID   uuid.UUID
	BranchID  uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.StaffReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.StaffReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	staffView, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(staffView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(staffView.ID, staffView.BranchID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(staffView.ID, staffView.BranchID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Staff().UpdateLastLogin(ctx, staffView.ID); updateErr != nil {
			slog.Warn("failed to update last login", "staff_id", staffView.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "staff_id", staffView.ID, "error", err.Error())
	}

	return &LoginResult{
		StaffID:  staffView.ID,
		BranchID: staffView.BranchID,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Refresh only succeeds while the account is still active
	staffView, err := a.readStore.FindByID(ctx, claims.StaffID)
	if err != nil || staffView == nil {
		return nil, ErrStaffNotFound
	}
	if !staffView.IsActive {
		return nil, ErrStaffInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.StaffID, staffView.BranchID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.StaffID, staffView.BranchID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*queries.AuthorizedStaffView, error) {
	staffView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration
		return nil, ErrInvalidCredentials
	}

	if staffView == nil {
		return nil, ErrStaffNotFound
	}
	if !staffView.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return staffView, nil
}
