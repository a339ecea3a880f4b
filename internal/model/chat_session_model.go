package model

import (
	"time"
)

type ChatSession struct {
	Id        string    `gorm:"type:varchar(36);primaryKey"`
	UserId    uint      `gorm:"not null;index"`
	Name      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
