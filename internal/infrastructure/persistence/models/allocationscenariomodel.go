package models

import (
	"time"

	"gorm.io/datatypes"

	"planwise/internal/shared/constants"
)

// AllocationScenarioModel represents the database persistence model for what-if scenarios.
// ScenarioData holds the proposed allocation snapshot and Metrics the derived
// numbers, both serialized as JSON so a scenario row is self-contained.
type AllocationScenarioModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:200"`
	Description  string `gorm:"size:1000"`
	ScenarioData datatypes.JSON
	Metrics      datatypes.JSON
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AllocationScenarioModel) TableName() string {
	return constants.TableAllocationScenarios
}
