package model

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	Id                    uint           `gorm:"primaryKey;autoIncrement"`
	Username              string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email                 string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash          string         `gorm:"type:varchar(255);not null"`
	FullName              string         `gorm:"type:varchar(255)"`
	PhoneNumber           string         `gorm:"type:varchar(50)"`
	EducationalBackground string         `gorm:"type:text"`
	Interests             datatypes.JSON `gorm:"type:text"`
	CreatedAt             time.Time      `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
