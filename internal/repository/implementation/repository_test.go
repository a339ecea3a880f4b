package implementation

import (
	"context"
	"testing"
	"time"

	"ai-counselor-be/internal/entity"
	"ai-counselor-be/internal/model"
	"ai-counselor-be/internal/repository/specification"
	"ai-counselor-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewGormDB(":memory:")
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.UsageRecord{},
	)
	require.NoError(t, err)

	return db
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		FullName:     "Alice Smith",
		Interests:    []string{},
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.Id)

	t.Run("FindOne by username", func(t *testing.T) {
		found, err := repo.FindOne(ctx, specification.ByUsername{Username: "alice"})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice@example.com", found.Email)
		assert.Equal(t, []string{}, found.Interests)
	})

	t.Run("FindOne unknown user returns nil without error", func(t *testing.T) {
		found, err := repo.FindOne(ctx, specification.ByUsername{Username: "nobody"})
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Duplicate username rejected by unique index", func(t *testing.T) {
		dup := &entity.User{
			Username:     "alice",
			Email:        "other@example.com",
			PasswordHash: "hash",
			CreatedAt:    time.Now(),
		}
		assert.Error(t, repo.Create(ctx, dup))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("UpdateProfile round-trips interests", func(t *testing.T) {
		err := repo.UpdateProfile(ctx, user.Id, "FSC Pre-Medical", []string{"medicine", "data science"})
		require.NoError(t, err)

		found, err := repo.FindOne(ctx, specification.ByUserID{ID: user.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "FSC Pre-Medical", found.EducationalBackground)
		assert.Equal(t, []string{"medicine", "data science"}, found.Interests)
	})

	t.Run("UpdateProfile with nil interests stores empty list", func(t *testing.T) {
		err := repo.UpdateProfile(ctx, user.Id, "", nil)
		require.NoError(t, err)

		found, err := repo.FindOne(ctx, specification.ByUserID{ID: user.Id})
		require.NoError(t, err)
		assert.Equal(t, []string{}, found.Interests)
	})
}

func TestChatSessionRepositoryOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatSessionRepository(db)
	ctx := context.Background()

	first := &entity.ChatSession{Id: uuid.NewString(), UserId: 1, Name: "Career Counseling Session"}
	require.NoError(t, repo.Create(ctx, first))

	time.Sleep(5 * time.Millisecond)

	second := &entity.ChatSession{Id: uuid.NewString(), UserId: 1, Name: "Career Counseling Session"}
	require.NoError(t, repo.Create(ctx, second))

	sessions, err := repo.FindAll(ctx,
		specification.UserOwnedBy{UserID: 1},
		specification.OrderByUpdatedAtDesc{},
	)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.Id, sessions[0].Id)

	// Touching the older session moves it to the front.
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.Touch(ctx, first.Id))

	sessions, err = repo.FindAll(ctx,
		specification.UserOwnedBy{UserID: 1},
		specification.OrderByUpdatedAtDesc{},
	)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.Id, sessions[0].Id)
}

func TestChatMessageRepositoryHistoryOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatMessageRepository(db)
	ctx := context.Background()

	sessionId := uuid.NewString()
	texts := []string{"first question", "first answer", "second question"}
	roles := []string{entity.ChatMessageRoleUser, entity.ChatMessageRoleAssistant, entity.ChatMessageRoleUser}

	for i := range texts {
		msg := &entity.ChatMessage{
			SessionId: sessionId,
			UserId:    1,
			Role:      roles[i],
			Text:      texts[i],
			CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, msg))
	}

	messages, err := repo.FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.UserOwnedBy{UserID: 1},
		specification.OrderByCreatedAtAsc{},
	)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, msg := range messages {
		assert.Equal(t, texts[i], msg.Text)
		assert.Equal(t, roles[i], msg.Role)
	}

	t.Run("Other session is not visible", func(t *testing.T) {
		messages, err := repo.FindAll(ctx, specification.BySessionID{SessionID: uuid.NewString()})
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
