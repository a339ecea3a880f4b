package events

import "time"

const TypeChatExchange = "CHAT_EXCHANGE"

// TopicChatUsage is the in-process bus topic carrying chat exchange events.
const TopicChatUsage = "chat_usage"

// ChatExchangeEvent is published after a user message and its counselor
// reply have both been persisted. Type is always TypeChatExchange.
type ChatExchangeEvent struct {
	Type           string    `json:"type"`
	SessionId      string    `json:"session_id"`
	UserId         uint      `json:"user_id"`
	QuestionLength int       `json:"question_length"`
	AnswerLength   int       `json:"answer_length"`
	DurationMs     int64     `json:"duration_ms"`
	OccurredAt     time.Time `json:"occurred_at"`
}
