package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlie2bored/shftrr/internal/config"
	"github.com/charlie2bored/shftrr/internal/db"
	"github.com/charlie2bored/shftrr/internal/types"
)

// fakeDB implements DBClient in memory, keyed by email.
type fakeDB struct {
	users map[string]*db.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[string]*db.User)}
}

func (f *fakeDB) CreateUser(_ context.Context, name, email, passwordHash string) (*db.User, error) {
	if _, exists := f.users[email]; exists {
		return nil, nil
	}
	u := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[email] = u
	return u, nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.users[email], nil
}

func (f *fakeDB) GetUserByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) UpdateUserPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return &ErrUserNotFound{UserID: id}
}

func testUserService(f *fakeDB) *UserService {
	return NewUserService(f, &config.PasswordConfig{BcryptCost: 10})
}

func registerTestUser(t *testing.T, svc *UserService) *types.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Jordan Reyes",
		Email:    "jordan@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterCreatesUser(t *testing.T) {
	f := newFakeDB()
	user := registerTestUser(t, testUserService(f))

	assert.Equal(t, "Jordan Reyes", user.Name)
	assert.Equal(t, "jordan@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	stored := f.users["jordan@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash, "password must be hashed")
}

func TestRegisterNormalizesEmail(t *testing.T) {
	f := newFakeDB()
	svc := testUserService(f)

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Jordan",
		Email:    "  JORDAN@Example.COM ",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", user.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFakeDB()
	svc := testUserService(f)
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Other Jordan",
		Email:    "jordan@example.com",
		Password: "another-password-1",
	})
	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "jordan@example.com", dup.Email)
}

func TestRegisterRejectsNameEmptyAfterSanitization(t *testing.T) {
	svc := testUserService(newFakeDB())

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "12345 !!! @@@",
		Email:    "jordan@example.com",
		Password: "correct-horse-battery",
	})
	var verr *ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	svc := testUserService(newFakeDB())
	registered := registerTestUser(t, svc)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jordan@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := testUserService(newFakeDB())
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jordan@example.com",
		Password: "wrong-password-here",
	})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestLoginRejectsUnknownUserWithSameError(t *testing.T) {
	svc := testUserService(newFakeDB())

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUpdatePasswordVerifiesCurrent(t *testing.T) {
	svc := testUserService(newFakeDB())
	user := registerTestUser(t, svc)

	err := svc.UpdatePassword(context.Background(), user.ID, "not-the-current-one", "new-password-123")
	var mismatch *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestUpdatePasswordChangesCredential(t *testing.T) {
	f := newFakeDB()
	svc := testUserService(f)
	user := registerTestUser(t, svc)

	err := svc.UpdatePassword(context.Background(), user.ID, "correct-horse-battery", "new-password-123")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jordan@example.com",
		Password: "new-password-123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email:    "jordan@example.com",
		Password: "correct-horse-battery",
	})
	assert.Error(t, err, "old password no longer works")
}

func TestGetUserReturnsNotFoundForUnknownID(t *testing.T) {
	svc := testUserService(newFakeDB())

	_, err := svc.GetUser(context.Background(), uuid.New())
	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}
