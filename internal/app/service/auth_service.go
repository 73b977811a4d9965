package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"learnpath_backend/internal/common"
	"learnpath_backend/internal/common/security"
	"learnpath_backend/internal/domain/model"
	"learnpath_backend/internal/domain/repository"
	"learnpath_backend/internal/platform/sessionstore"
)

type AuthService struct {
	userRepo   repository.UserRepository
	sessions   sessionstore.Store
	tokenAuth  *jwtauth.JWTAuth
	sessionExp time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessions sessionstore.Store,
	tokenAuth *jwtauth.JWTAuth,
	sessionExp time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		tokenAuth:  tokenAuth,
		sessionExp: sessionExp,
	}
}

type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

// AuthResult carries the authenticated user and the signed session token the
// handler sets as a cookie.
type AuthResult struct {
	User  *model.User
	Token string
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.WithMessage(common.ErrBadRequest, "Missing data")
	}

	// Pre-check for a friendlier failure; the unique constraint on email is
	// the backstop for two racing signups, and the repository surfaces that
	// as the same conflict.
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, common.WithMessage(common.ErrConflict, "Email already registered.")
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.WithMessage(common.ErrConflict, "Email already registered.")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.establishSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.WithMessage(common.ErrBadRequest, "Missing data")
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same message as a wrong password, so callers can't probe for
			// registered emails.
			return nil, common.WithMessage(common.ErrInvalidCredentials, "Invalid email or password.")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.WithMessage(common.ErrInvalidCredentials, "Invalid email or password.")
	}

	return s.establishSession(ctx, user)
}

// Logout revokes the session server-side. Deleting an already-deleted
// session is a no-op, which keeps logout idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) establishSession(ctx context.Context, user *model.User) (*AuthResult, error) {
	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, user.ID, s.sessionExp); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := security.GenerateSessionToken(s.tokenAuth, sessionID, user.ID, s.sessionExp)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	user.HashedPassword = ""
	return &AuthResult{User: user, Token: token}, nil
}
