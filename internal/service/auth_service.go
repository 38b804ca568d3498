package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/payswift/auth-service/internal/auth"
	"github.com/payswift/auth-service/internal/config"
	"github.com/payswift/auth-service/internal/domain"
	"github.com/payswift/auth-service/internal/events"
	"github.com/payswift/auth-service/internal/repository"
	apperrors "github.com/payswift/auth-service/pkg/util"
)

// AuthService coordinates registration, login and token verification flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput carries the register request fields. Role is accepted for
// wire compatibility and discarded: accounts always start with no role.
type RegisterInput struct {
	Name         string
	PIN          string
	MobileNumber string
	Email        string
	Role         string
}

// Register creates a new pending account with a hashed PIN and zero balance.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if in.Name == "" || in.PIN == "" || in.MobileNumber == "" || in.Email == "" {
		return apperrors.NewValidationError("all fields are required", nil)
	}
	if err := auth.ValidatePIN(in.PIN); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	if _, err := s.users.GetByIdentifier(ctx, in.MobileNumber); err == nil {
		return apperrors.NewConflict("user already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewInternalError(err)
	}
	if _, err := s.users.GetByIdentifier(ctx, in.Email); err == nil {
		return apperrors.NewConflict("user already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPIN(in.PIN, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         in.Name,
		MobileNumber: in.MobileNumber,
		Email:        in.Email,
		PINHash:      hash,
		Role:         "",
		Status:       domain.UserStatusPending,
		Balance:      0,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The store enforces uniqueness atomically; a concurrent duplicate
		// that passed the existence check lands here.
		if errors.Is(err, repository.ErrDuplicateIdentity) {
			return apperrors.NewConflict("user already exists", nil)
		}
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Name:         user.Name,
		MobileNumber: user.MobileNumber,
		Email:        user.Email,
	})
	return nil
}

// Login authenticates by mobile number or email plus PIN and issues a token.
// Unknown identifier and wrong PIN are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identifier, pin string) (string, time.Time, error) {
	if identifier == "" || pin == "" {
		return "", time.Time{}, apperrors.NewValidationError("identifier and PIN are required", nil)
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePIN(user.PINHash, pin); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	if user.Status != domain.UserStatusActive {
		return "", time.Time{}, apperrors.NewForbidden("account not activated")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserLoggedIn, user.ID, events.UserLoggedInPayload{
		Role:           user.Role,
		TokenExpiresAt: expiresAt,
	})
	return token, expiresAt, nil
}

// GetUser loads the account behind a verified token subject.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
