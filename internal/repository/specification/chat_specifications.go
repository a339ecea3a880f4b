package specification

import (
	"gorm.io/gorm"
)

// SessionByID looks a chat session up by its primary key.
type SessionByID struct {
	ID string
}

func (s SessionByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// OrderByUpdatedAtDesc sorts sessions most-recently-active first.
type OrderByUpdatedAtDesc struct{}

func (s OrderByUpdatedAtDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC")
}

// OrderByCreatedAtAsc sorts messages into chat-transcript order. Id breaks
// ties between rows written inside the same timestamp granule.
type OrderByCreatedAtAsc struct{}

func (s OrderByCreatedAtAsc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}
