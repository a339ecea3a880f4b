package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionKeyUserID    = "user_id"
	SessionKeyUsername  = "username"
	SessionKeyFullName  = "full_name"
	SessionKeySessionID = "session_id"
)

// SessionManager wraps the fiber session store and owns the cookie keys the
// app reads. All handlers go through it rather than touching the store
// directly.
type SessionManager struct {
	store *session.Store
}

func NewSessionManager() *SessionManager {
	store := session.New(session.Config{
		Storage:        NewCacheStorage(24*time.Hour, 10*time.Minute),
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:counselor_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &SessionManager{store: store}
}

func (m *SessionManager) Login(ctx *fiber.Ctx, userID uint, username, fullName string) error {
	sess, err := m.store.Get(ctx)
	if err != nil {
		return err
	}
	sess.Set(SessionKeyUserID, userID)
	sess.Set(SessionKeyUsername, username)
	sess.Set(SessionKeyFullName, fullName)
	return sess.Save()
}

func (m *SessionManager) Logout(ctx *fiber.Ctx) error {
	sess, err := m.store.Get(ctx)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// CurrentUserID reports the logged-in user, or ok=false when the request
// carries no authenticated session.
func (m *SessionManager) CurrentUserID(ctx *fiber.Ctx) (uint, bool) {
	sess, err := m.store.Get(ctx)
	if err != nil {
		return 0, false
	}
	raw := sess.Get(SessionKeyUserID)
	if raw == nil {
		return 0, false
	}
	userID, ok := raw.(uint)
	if !ok {
		return 0, false
	}
	return userID, true
}

func (m *SessionManager) Username(ctx *fiber.Ctx) string {
	return m.getString(ctx, SessionKeyUsername)
}

func (m *SessionManager) FullName(ctx *fiber.Ctx) string {
	return m.getString(ctx, SessionKeyFullName)
}

// ActiveChatSession returns the chat session bound to this browser session,
// empty when none has been opened yet.
func (m *SessionManager) ActiveChatSession(ctx *fiber.Ctx) string {
	return m.getString(ctx, SessionKeySessionID)
}

func (m *SessionManager) SetActiveChatSession(ctx *fiber.Ctx, chatSessionID string) error {
	sess, err := m.store.Get(ctx)
	if err != nil {
		return err
	}
	sess.Set(SessionKeySessionID, chatSessionID)
	return sess.Save()
}

func (m *SessionManager) getString(ctx *fiber.Ctx, key string) string {
	sess, err := m.store.Get(ctx)
	if err != nil {
		return ""
	}
	raw := sess.Get(key)
	if raw == nil {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return value
}
