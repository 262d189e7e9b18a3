package models

import (
	"time"

	"planwise/internal/shared/constants"
)

// ProjectRequirementModel represents the database persistence model for project skill requirements
type ProjectRequirementModel struct {
	ID                  uint    `gorm:"primarykey"`
	ProjectID           uint    `gorm:"not null;index"`
	SkillName           string  `gorm:"not null;size:100"`
	RequiredProficiency int     `gorm:"not null"`
	RequiredHours       float64 `gorm:"type:decimal(10,2)"`
	Description         string  `gorm:"size:500"`
	CreatedAt           time.Time
}

// TableName specifies the table name for GORM
func (ProjectRequirementModel) TableName() string {
	return constants.TableProjectRequirements
}
