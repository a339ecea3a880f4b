package entity

import (
	"time"
)

// ChatSession is a named, persisted conversation thread. Its Id doubles as
// the session token handed to the browser, so it is a uuid string rather
// than an autoincrement.
type ChatSession struct {
	Id        string
	UserId    uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
