package models

import (
	"time"

	"planwise/internal/shared/constants"
)

// ProjectModel represents the database persistence model for projects
type ProjectModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:200"`
	Description string `gorm:"size:1000"`
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return constants.TableProjects
}
