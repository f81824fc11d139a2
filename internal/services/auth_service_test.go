package services

import (
	"testing"

	"github.com/ahmed-226/Task-Management/internal/models"
	"github.com/ahmed-226/Task-Management/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db), NewTokenService("test-secret"))
}

func TestAuthService_RegisterStoresHash(t *testing.T) {
	svc := setupAuthService(t)

	user, token, err := svc.Register(RegisterInput{
		Username: "newuser",
		Email:    "New@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Email is normalized, plaintext is never stored
	require.Equal(t, "new@example.com", user.Email)
	require.NotEqual(t, "supersecret", user.PasswordHash)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "", user.ID.String())
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := setupAuthService(t)

	_, _, err := svc.Register(RegisterInput{Username: "first", Email: "taken@example.com", Password: "supersecret"})
	require.NoError(t, err)

	// Different casing, username and password still conflict
	_, _, err = svc.Register(RegisterInput{Username: "second", Email: "TAKEN@example.com", Password: "otherpassword"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthService(t)

	registered, _, err := svc.Register(RegisterInput{Username: "user", Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)

	user, token, err := svc.Login(LoginInput{Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	_, _, err = svc.Login(LoginInput{Email: "user@example.com", Password: "wrongpassword"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
