package dto

import "time"

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionId string `json:"session_id"`
}

// ChatHistoryItem mirrors what the chat page renders: "type" is the message
// role, "timestamp" its creation time.
type ChatHistoryItem struct {
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSessionItem struct {
	SessionId   string    `json:"session_id"`
	SessionName string    `json:"session_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
