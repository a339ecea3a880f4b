package entity

import (
	"time"
)

type User struct {
	Id                    uint
	Username              string
	Email                 string
	PasswordHash          string
	FullName              string
	PhoneNumber           string
	EducationalBackground string
	Interests             []string
	CreatedAt             time.Time
}
