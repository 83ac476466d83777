package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SolutionModel struct {
	ID              uint           `gorm:"primaryKey"`
	TicketID        uint           `gorm:"not null;index"`
	AuthorID        uint           `gorm:"not null;index"`
	RootCause       string         `gorm:"type:text;not null"`
	FixSteps        string         `gorm:"type:text;not null"`
	PreventionNotes string         `gorm:"type:text"`
	Tags            datatypes.JSON `gorm:"type:json"`
	Attachments     datatypes.JSON `gorm:"type:json"`
	Status          string         `gorm:"size:20;not null;index"`
	IsActive        bool           `gorm:"not null;default:true;index"`
	ReuseCount      int            `gorm:"not null;default:0"`
	ReviewedBy      *uint
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (SolutionModel) TableName() string {
	return "solutions"
}
