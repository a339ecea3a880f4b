package model

import (
	"time"
)

type ChatMessage struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	SessionId string    `gorm:"type:varchar(36);not null;index"`
	UserId    uint      `gorm:"not null;index"`
	Role      string    `gorm:"type:varchar(50);not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
