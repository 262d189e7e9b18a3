package usecases

import (
	"context"
	"fmt"

	"planwise/internal/application/project/dto"
	"planwise/internal/domain/project"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// ListProjectsUseCase lists all stored projects
type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

// NewListProjectsUseCase creates a new ListProjectsUseCase
func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute lists all projects.
func (uc *ListProjectsUseCase) Execute(ctx context.Context) ([]dto.ProjectDTO, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	result := make([]dto.ProjectDTO, 0, len(projects))
	for _, proj := range projects {
		result = append(result, projectToDTO(proj))
	}
	return result, nil
}

// ListRequirementsUseCase lists the skill requirements declared on a project
type ListRequirementsUseCase struct {
	projectRepo     project.Repository
	requirementRepo project.RequirementRepository
	logger          logger.Interface
}

// NewListRequirementsUseCase creates a new ListRequirementsUseCase
func NewListRequirementsUseCase(
	projectRepo project.Repository,
	requirementRepo project.RequirementRepository,
	logger logger.Interface,
) *ListRequirementsUseCase {
	return &ListRequirementsUseCase{
		projectRepo:     projectRepo,
		requirementRepo: requirementRepo,
		logger:          logger,
	}
}

// Execute returns the requirements for a project.
func (uc *ListRequirementsUseCase) Execute(ctx context.Context, projectID uint) ([]dto.RequirementDTO, error) {
	proj, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("project %d", projectID))
	}

	reqs, err := uc.requirementRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to list requirements", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}

	result := make([]dto.RequirementDTO, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, dto.RequirementDTO{
			ID:                  req.ID(),
			ProjectID:           req.ProjectID(),
			SkillName:           req.SkillName(),
			RequiredProficiency: req.RequiredProficiency(),
			RequiredHours:       req.RequiredHours(),
			Description:         req.Description(),
		})
	}
	return result, nil
}
