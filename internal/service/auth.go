package service

import (
	"context"
	"errors"
	"time"

	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EmployeeStore is the slice of the employee repository that login needs.
type EmployeeStore interface {
	FindByIdentifier(ctx context.Context, identifier string) (*model.Employee, error)
	UpdateLastLogin(ctx context.Context, id uint) error
}

// PatientStore is the slice of the patient repository that login needs.
type PatientStore interface {
	FindByIdentifier(ctx context.Context, identifier string) (*model.Patient, error)
}

// TokenLedger persists issued refresh tokens. At most one live token per
// (user, type); only tokens present here are honored on refresh.
type TokenLedger interface {
	Upsert(ctx context.Context, token *model.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*model.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
}

type AuthService struct {
	employees EmployeeStore
	patients  PatientStore
	ledger    TokenLedger
	tokens    *TokenService
	logger    *zap.Logger
}

func NewAuthService(employees EmployeeStore, patients PatientStore, ledger TokenLedger, tokens *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		employees: employees,
		patients:  patients,
		ledger:    ledger,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login resolves the identifier against employees first, then patients. An
// identifier present in both tables always authenticates as the employee.
// Unknown identifier and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := s.resolveIdentity(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.passwordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch",
			zap.String("user_type", identity.userType),
			zap.Uint("user_id", identity.id))
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(identity.id, identity.userType, identity.role, identity.name)
	if err != nil {
		return nil, err
	}
	refreshToken, expiresAt, err := s.tokens.GenerateRefreshToken(identity.id, identity.userType, identity.role, identity.name)
	if err != nil {
		return nil, err
	}

	err = s.ledger.Upsert(ctx, &model.RefreshToken{
		Token:     refreshToken,
		UserID:    identity.id,
		UserType:  identity.userType,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.logger.Error("failed to persist refresh token", zap.Error(err))
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if identity.userType == model.UserTypeEmployee {
		if err := s.employees.UpdateLastLogin(ctx, identity.id); err != nil {
			s.logger.Warn("failed to update last login", zap.Error(err))
		}
	}

	s.logger.Info("login succeeded",
		zap.String("user_type", identity.userType),
		zap.Uint("user_id", identity.id))

	return &dto.LoginResponse{
		ID:           identity.id,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         identity.role,
		Name:         identity.name,
		Type:         identity.userType,
	}, nil
}

// Refresh exchanges a ledgered refresh token for a new access token. The
// ledger is consulted before the signature so a revoked token fails even if
// cryptographically valid.
func (s *AuthService) Refresh(ctx context.Context, token string) (*dto.RefreshResponse, error) {
	if token == "" {
		return nil, apperrors.ErrMissingToken
	}

	row, err := s.ledger.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnknownToken
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if time.Now().After(row.ExpiresAt) {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	claims, err := s.tokens.VerifyRefreshToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	// The new access token carries the same session payload the login
	// embedded in the refresh token, role included, so role-gated routes
	// keep working across an access-token expiry.
	accessToken, err := s.tokens.GenerateAccessToken(claims.UserID, claims.UserType, claims.Role, claims.Name)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout revokes the refresh token. Revoking an unknown or already revoked
// token succeeds; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.ledger.DeleteByToken(ctx, token); err != nil {
		s.logger.Error("failed to delete refresh token", zap.Error(err))
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

type resolvedIdentity struct {
	id           uint
	userType     string
	role         string
	name         string
	passwordHash string
}

func (s *AuthService) resolveIdentity(ctx context.Context, identifier string) (*resolvedIdentity, error) {
	employee, err := s.employees.FindByIdentifier(ctx, identifier)
	if err == nil {
		return &resolvedIdentity{
			id:           employee.ID,
			userType:     model.UserTypeEmployee,
			role:         employee.Role,
			name:         employee.FullName(),
			passwordHash: employee.PasswordHash,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	patient, err := s.patients.FindByIdentifier(ctx, identifier)
	if err == nil {
		return &resolvedIdentity{
			id:           patient.ID,
			userType:     model.UserTypePatient,
			role:         "Patient",
			name:         patient.FullName(),
			passwordHash: patient.PasswordHash,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return nil, apperrors.ErrInvalidCredentials
}
