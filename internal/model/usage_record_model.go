package model

import (
	"time"

	"gorm.io/datatypes"
)

type UsageRecord struct {
	Id        uint           `gorm:"primaryKey;autoIncrement"`
	Level     string         `gorm:"type:varchar(20);not null;index"`
	Module    string         `gorm:"type:varchar(50)"`
	Message   string         `gorm:"type:text;not null"`
	Details   datatypes.JSON `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (UsageRecord) TableName() string {
	return "usage_records"
}
