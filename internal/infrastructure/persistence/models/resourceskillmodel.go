package models

import (
	"time"

	"planwise/internal/shared/constants"
)

// ResourceSkillModel represents the database persistence model for resource skills
type ResourceSkillModel struct {
	ID               uint   `gorm:"primarykey"`
	ResourceID       uint   `gorm:"not null;uniqueIndex:idx_resource_skill"`
	SkillName        string `gorm:"not null;size:100;uniqueIndex:idx_resource_skill"`
	ProficiencyLevel int    `gorm:"not null"`
	CreatedAt        time.Time
}

// TableName specifies the table name for GORM
func (ResourceSkillModel) TableName() string {
	return constants.TableResourceSkills
}
