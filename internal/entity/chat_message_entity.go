package entity

import (
	"time"
)

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

type ChatMessage struct {
	Id        uint
	SessionId string
	UserId    uint
	Role      string
	Text      string
	CreatedAt time.Time
}
