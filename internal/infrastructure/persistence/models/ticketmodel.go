package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TicketModel struct {
	ID               uint           `gorm:"primaryKey"`
	Title            string         `gorm:"size:200;not null"`
	Description      string         `gorm:"type:text;not null"`
	Attachments      datatypes.JSON `gorm:"type:json"`
	Status           string         `gorm:"size:20;not null;index"`
	CreatedBy        uint           `gorm:"not null;index"`
	RedeemedBy       *uint          `gorm:"index"`
	ReusedSolutionID *uint          `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
