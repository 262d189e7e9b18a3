package migration

import (
	"planwise/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the schema consists of.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ResourceModel{},
		&models.ResourceSkillModel{},
		&models.AllocationModel{},
		&models.ProjectModel{},
		&models.ProjectRequirementModel{},
		&models.AllocationScenarioModel{},
	}
}
