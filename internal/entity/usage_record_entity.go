package entity

import (
	"time"
)

// UsageRecord is an append-only audit row written by the event consumer
// for every completed chat exchange.
type UsageRecord struct {
	Id        uint
	Level     string
	Module    string
	Message   string
	Details   map[string]interface{}
	CreatedAt time.Time
}
