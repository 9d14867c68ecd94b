package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/charlie2bored/shftrr/internal/config"
	"github.com/charlie2bored/shftrr/internal/db"
	"github.com/charlie2bored/shftrr/internal/sanitize"
	"github.com/charlie2bored/shftrr/internal/types"
)

// DBClient is the persistence surface the user service needs. *db.DB
// satisfies it; tests provide fakes.
type DBClient interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*db.User, error)
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService provides business logic for user authentication operations
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// toAPIUser converts db.User to types.User, excluding the password hash
func toAPIUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:        dbUser.ID,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	name := sanitize.Name(req.Name)
	email := sanitize.Email(req.Email)
	if name == "" {
		return nil, &ErrValidation{Field: "name", Message: "name is empty after sanitization"}
	}
	if email == "" {
		return nil, &ErrValidation{Field: "email", Message: "email is empty after sanitization"}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser, err := s.db.CreateUser(ctx, name, email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	return toAPIUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, sanitize.Email(req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: generic error whether the user is missing or the
	// password is wrong.
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIUser(dbUser), nil
}

// GetUser retrieves a user's profile by ID.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return toAPIUser(dbUser), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdateUserPassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
