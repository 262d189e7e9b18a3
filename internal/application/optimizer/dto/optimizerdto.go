// Package dto defines the data transfer objects returned by the allocation
// optimizer use cases.
package dto

import "time"

// AllocationDetailDTO is a single allocation row inside a utilization report.
// Dates are ISO date strings; nil when the allocation carries no dates.
// ProjectName degrades to "Unknown" when the project cannot be resolved.
type AllocationDetailDTO struct {
	ProjectID      uint    `json:"project_id"`
	ProjectName    string  `json:"project_name"`
	AllocatedHours float64 `json:"allocated_hours"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
}

// ResourceUtilizationDTO is the per-resource capacity ledger entry.
type ResourceUtilizationDTO struct {
	ResourceID            uint                  `json:"resource_id"`
	ResourceName          string                `json:"resource_name"`
	CapacityHours         float64               `json:"capacity_hours"`
	AllocatedHours        float64               `json:"allocated_hours"`
	AvailableHours        float64               `json:"available_hours"`
	UtilizationPercentage float64               `json:"utilization_percentage"`
	Status                string                `json:"status"`
	Allocations           []AllocationDetailDTO `json:"allocations"`
}

// SchedulingConflictDTO describes one detected scheduling conflict.
type SchedulingConflictDTO struct {
	ResourceID          uint   `json:"resource_id"`
	ResourceName        string `json:"resource_name"`
	ConflictType        string `json:"conflict_type"`
	Description         string `json:"description"`
	AffectedProjects    []uint `json:"affected_projects"`
	Severity            string `json:"severity"`
	SuggestedResolution string `json:"suggested_resolution"`
}

// SkillMatchEntryDTO is the per-skill comparison inside a skill match.
type SkillMatchEntryDTO struct {
	Required int     `json:"required"`
	Actual   int     `json:"actual"`
	Match    string  `json:"match"`
	Score    float64 `json:"score"`
}

// SkillMatchDTO is the result of scoring a resource against a project's
// requirements. Message is set instead of Details when the project declares
// no requirements.
type SkillMatchDTO struct {
	Score   float64                       `json:"score"`
	Details map[string]SkillMatchEntryDTO `json:"details,omitempty"`
	Message string                        `json:"message,omitempty"`
}

// ResourceRecommendationDTO is one ranked candidate for a project.
type ResourceRecommendationDTO struct {
	ResourceID        uint          `json:"resource_id"`
	ResourceName      string        `json:"resource_name"`
	ProjectID         uint          `json:"project_id"`
	ProjectName       string        `json:"project_name"`
	MatchScore        float64       `json:"match_score"`
	SkillMatch        SkillMatchDTO `json:"skill_match"`
	AvailabilityScore float64       `json:"availability_score"`
	Reasoning         string        `json:"reasoning"`
}

// UtilizationSummaryDTO aggregates utilization status counts system-wide.
type UtilizationSummaryDTO struct {
	TotalResources int     `json:"total_resources"`
	UnderUtilized  int     `json:"under_utilized"`
	Optimal        int     `json:"optimal"`
	OverUtilized   int     `json:"over_utilized"`
	AvgUtilization float64 `json:"avg_utilization"`
}

// OptimizationResultDTO is the full recommendation payload for a project.
type OptimizationResultDTO struct {
	Recommendations    []ResourceRecommendationDTO `json:"recommendations"`
	Conflicts          []SchedulingConflictDTO     `json:"conflicts"`
	UtilizationSummary UtilizationSummaryDTO       `json:"utilization_summary"`
	OptimizationScore  int                         `json:"optimization_score"`
}

// ProposedAllocationInput is one hypothetical allocation in a scenario request.
type ProposedAllocationInput struct {
	ResourceID     uint       `json:"resource_id" binding:"required"`
	ProjectID      uint       `json:"project_id" binding:"required"`
	AllocatedHours float64    `json:"allocated_hours" binding:"min=0"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
}

// ScenarioMetricsDTO carries the derived metrics of a stored scenario.
type ScenarioMetricsDTO struct {
	TotalAllocatedHours float64 `json:"total_allocated_hours"`
	ResourcesInvolved   int     `json:"resources_involved"`
	ProjectsInvolved    int     `json:"projects_involved"`
	AllocationsCount    int     `json:"allocations_count"`
}

// ScenarioDTO is a stored what-if scenario with its frozen allocation set.
type ScenarioDTO struct {
	ID          uint                      `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Allocations []ProposedAllocationInput `json:"allocations"`
	Metrics     ScenarioMetricsDTO        `json:"metrics"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// ComparisonMetricsDTO is a columnar view over compared scenarios, aligned
// by scenario order.
type ComparisonMetricsDTO struct {
	TotalHours       []float64 `json:"total_hours"`
	ResourcesUsed    []int     `json:"resources_used"`
	ProjectsCovered  []int     `json:"projects_covered"`
	AllocationsCount []int     `json:"allocations_count"`
}

// ScenarioComparisonDTO is the result of comparing stored scenarios.
type ScenarioComparisonDTO struct {
	Scenarios         []ScenarioDTO        `json:"scenarios"`
	ComparisonMetrics ComparisonMetricsDTO `json:"comparison_metrics"`
	Recommendation    string               `json:"recommendation"`
}
