package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hanuchaudhary/Job-Portal/internal/auth"
	"github.com/hanuchaudhary/Job-Portal/internal/config"
	"github.com/hanuchaudhary/Job-Portal/internal/dtos"
	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

// UserService handles registration, login and the self-service profile
// operations. Tokens it issues are the credential every protected route
// expects in the authorization header.
type UserService struct {
	users     repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(users repositories.UserRepository, cfg config.Config) *UserService {
	return &UserService{
		users:     users,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  cfg.TokenTTL,
	}
}

// Register creates a user with a salted password hash and returns the record
// together with a freshly issued token. A taken email fails with ErrConflict.
func (s *UserService) Register(ctx context.Context, req dtos.SignupRequest) (*models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, "", fmt.Errorf("role %q: %w", req.Role, shared.ErrValidation)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", fmt.Errorf("email %s: %w", email, shared.ErrConflict)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, "", fmt.Errorf("checking email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}
	user := &models.User{
		Email:    email,
		Password: hash,
		FullName: strings.TrimSpace(req.FullName),
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}
	return user, token, nil
}

// Authenticate verifies credentials and mints a token. An unknown email
// surfaces ErrNotFound, a wrong password ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, req dtos.SigninRequest) (*models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("email %s: %w", email, err)
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", shared.ErrUnauthorized
	}
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}
	return user, token, nil
}

// GetProfile returns the caller's record with applications (creation order,
// each with job and company), posted jobs (each with applications and their
// applicants) and saved jobs nested in.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindProfile(ctx, userID)
}

// Search matches the filter case-insensitively against full name or email.
// An empty filter matches everyone.
func (s *UserService) Search(ctx context.Context, filter string) ([]models.User, error) {
	return s.users.Search(ctx, filter)
}

// UpdateSelf applies the supplied fields only; a new password is rehashed
// before storage.
func (s *UserService) UpdateSelf(ctx context.Context, userID string, req dtos.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if req.FullName != "" {
		user.FullName = strings.TrimSpace(req.FullName)
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Password = hash
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}
	return user, nil
}

// DeleteSelf removes the caller; the store cascades to the user's jobs,
// applications and bookmarks.
func (s *UserService) DeleteSelf(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}
