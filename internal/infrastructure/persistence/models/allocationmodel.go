package models

import (
	"time"

	"planwise/internal/shared/constants"
)

// AllocationModel represents the database persistence model for allocations
type AllocationModel struct {
	ID             uint    `gorm:"primarykey"`
	ResourceID     uint    `gorm:"not null;index"`
	ProjectID      uint    `gorm:"not null;index"`
	AllocatedHours float64 `gorm:"not null;type:decimal(10,2)"`
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (AllocationModel) TableName() string {
	return constants.TableAllocations
}
