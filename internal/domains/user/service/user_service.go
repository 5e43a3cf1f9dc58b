package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sportshub-backend/internal/domains/user"
	"sportshub-backend/pkg/jwt"
)

// bcryptCost balances hashing time against brute-force resistance.
const bcryptCost = 10

// userService implements user.Service.
type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

// NewUserService wires the repository and the token manager.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo: repo,
		jwt:  jwtManager,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register creates an account and signs a session token for it.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, string, error) {
	// DTO validation already ran in the handler, but double-check here
	// so the service stays safe when called directly.
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	// Username conflict first, then email, so the caller gets the most
	// specific message.
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, "", user.ErrUsernameAlreadyExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, "", fmt.Errorf("check username: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, "", user.ErrEmailAlreadyExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    string(passwordHash),
		FirstName:       stringPtr(req.FirstName),
		LastName:        stringPtr(req.LastName),
		ProfileImageURL: stringPtr(req.ProfileImageURL),
		Role:            user.RoleAuthor, // New accounts can publish right away
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(newUser.ID.String(), newUser.Username, string(newUser.Role))
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return newUser.ToDTO(), token, nil
}

// Login verifies credentials and signs a session token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.UserDTO, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a wrong password, no account enumeration.
			return nil, "", user.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", user.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID.String(), u.Username, string(u.Role))
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return u.ToDTO(), token, nil
}

// GetProfile returns the public projection of the authenticated user.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.ToDTO(), nil
}

// stringPtr converts an optional form field to a nullable column value.
func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
