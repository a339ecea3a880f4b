package service

import (
	"context"
	"testing"

	"ai-counselor-be/internal/dto"
	"ai-counselor-be/internal/model"
	"ai-counselor-be/internal/repository/unitofwork"
	"ai-counselor-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	db, err := database.NewGormDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.UsageRecord{},
	))
	return unitofwork.NewRepositoryFactory(db)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewAuthService(factory)
	ctx := context.Background()

	req := &dto.SignupRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
		FullName: "Bob Jones",
	}
	user, sessionId, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.NotEmpty(t, sessionId, "signup should open a default chat session")
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))

	t.Run("Duplicate username", func(t *testing.T) {
		_, _, err := svc.Register(ctx, &dto.SignupRequest{
			Username: "bob",
			Email:    "bob2@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, &dto.SignupRequest{
			Username: "bob2",
			Email:    "bob@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("Login with correct password", func(t *testing.T) {
		logged, err := svc.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, user.Id, logged.Id)
		assert.Equal(t, "Bob Jones", logged.FullName)
	})

	t.Run("Login with wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Login with unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
