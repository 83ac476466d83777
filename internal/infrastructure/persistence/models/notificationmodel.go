package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index"`
	EventType string         `gorm:"size:50;not null;index"`
	Title     string         `gorm:"size:200"`
	Payload   datatypes.JSON `gorm:"type:json"`
	IsRead    bool           `gorm:"not null;default:false;index"`
	CreatedAt time.Time      `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
