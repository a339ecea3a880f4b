package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ai-counselor-be/internal/constant"
	"ai-counselor-be/internal/entity"
	"ai-counselor-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCounselor struct {
	answer string
}

func (s *staticCounselor) Answer(ctx context.Context, question string) string {
	return s.answer
}

type capturingPublisher struct {
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestChatServiceSessions(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewChatService(factory, &staticCounselor{answer: "hello"}, nil, testLogger())
	ctx := context.Background()

	t.Run("CreateSession uses the default name", func(t *testing.T) {
		sessionId, err := svc.CreateSession(ctx, 1)
		require.NoError(t, err)
		assert.NotEmpty(t, sessionId)

		sessions, err := svc.GetUserSessions(ctx, 1)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, constant.DefaultChatSessionName, sessions[0].SessionName)
	})

	t.Run("LatestOrCreateSession reuses the existing session", func(t *testing.T) {
		existing, err := svc.GetUserSessions(ctx, 1)
		require.NoError(t, err)
		require.Len(t, existing, 1)

		sessionId, err := svc.LatestOrCreateSession(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, existing[0].SessionId, sessionId)
	})

	t.Run("LatestOrCreateSession creates for a fresh user", func(t *testing.T) {
		sessionId, err := svc.LatestOrCreateSession(ctx, 2)
		require.NoError(t, err)
		assert.NotEmpty(t, sessionId)

		sessions, err := svc.GetUserSessions(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, sessions, 1)
	})
}

func TestChatServiceSendChat(t *testing.T) {
	factory := newTestFactory(t)
	publisher := &capturingPublisher{}
	svc := NewChatService(factory, &staticCounselor{answer: "try data science"}, publisher, testLogger())
	ctx := context.Background()

	sessionId, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	res, err := svc.SendChat(ctx, 1, sessionId, "what career suits me?")
	require.NoError(t, err)
	assert.Equal(t, "try data science", res.Response)
	assert.Equal(t, sessionId, res.SessionId)

	history, err := svc.GetChatHistory(ctx, sessionId, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.ChatMessageRoleUser, history[0].Type)
	assert.Equal(t, "what career suits me?", history[0].Text)
	assert.Equal(t, entity.ChatMessageRoleAssistant, history[1].Type)
	assert.Equal(t, "try data science", history[1].Text)

	t.Run("Exchange event published", func(t *testing.T) {
		require.Len(t, publisher.payloads, 1)

		var evt events.ChatExchangeEvent
		require.NoError(t, json.Unmarshal(publisher.payloads[0], &evt))
		assert.Equal(t, events.TypeChatExchange, evt.Type)
		assert.Equal(t, sessionId, evt.SessionId)
		assert.Equal(t, uint(1), evt.UserId)
		assert.Equal(t, len("what career suits me?"), evt.QuestionLength)
		assert.Equal(t, len("try data science"), evt.AnswerLength)
	})

	t.Run("History of another user's session reads empty", func(t *testing.T) {
		history, err := svc.GetChatHistory(ctx, sessionId, 99)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("History of an unknown session reads empty", func(t *testing.T) {
		history, err := svc.GetChatHistory(ctx, "no-such-session", 1)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Empty message persists nothing", func(t *testing.T) {
		_, err := svc.SendChat(ctx, 1, sessionId, "   ")
		assert.ErrorIs(t, err, ErrEmptyMessage)

		history, err := svc.GetChatHistory(ctx, sessionId, 1)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("Exchange bumps the session", func(t *testing.T) {
		time.Sleep(5 * time.Millisecond)
		other, err := svc.CreateSession(ctx, 1)
		require.NoError(t, err)

		sessions, err := svc.GetUserSessions(ctx, 1)
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, other, sessions[0].SessionId)

		time.Sleep(5 * time.Millisecond)
		_, err = svc.SendChat(ctx, 1, sessionId, "another question")
		require.NoError(t, err)

		sessions, err = svc.GetUserSessions(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, sessionId, sessions[0].SessionId)
	})
}
