package models

import (
	"time"

	"planwise/internal/shared/constants"
)

// ResourceModel represents the database persistence model for resources
// This is the anti-corruption layer between domain and database
type ResourceModel struct {
	ID            uint    `gorm:"primarykey"`
	Name          string  `gorm:"not null;size:100"`
	Role          string  `gorm:"size:100"`
	CapacityHours float64 `gorm:"not null;type:decimal(10,2)"`
	Department    string  `gorm:"size:100"`
	Location      string  `gorm:"size:100"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (ResourceModel) TableName() string {
	return constants.TableResources
}
