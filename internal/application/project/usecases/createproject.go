// Package usecases implements project-side operations: project creation and
// lookup, requirement declaration, and the per-project allocation listing.
package usecases

import (
	"context"
	"fmt"
	"time"

	"planwise/internal/application/project/dto"
	"planwise/internal/domain/project"
	"planwise/internal/shared/errors"
	"planwise/internal/shared/logger"
)

// CreateProjectCommand carries a new project.
type CreateProjectCommand struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

// CreateProjectUseCase handles the creation of a new project
type CreateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase
func NewCreateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute creates the project.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	proj, err := project.NewProject(cmd.Name, cmd.Description, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Create(ctx, proj); err != nil {
		uc.logger.Errorw("failed to save project", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	uc.logger.Infow("project created", "id", proj.ID(), "name", proj.Name())

	result := projectToDTO(proj)
	return &result, nil
}

// GetProjectUseCase retrieves one project
type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

// NewGetProjectUseCase creates a new GetProjectUseCase
func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute retrieves the project or fails with a not found error.
func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID uint) (*dto.ProjectDTO, error) {
	proj, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		uc.logger.Errorw("failed to get project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found", fmt.Sprintf("project %d", projectID))
	}

	result := projectToDTO(proj)
	return &result, nil
}

func projectToDTO(proj *project.Project) dto.ProjectDTO {
	return dto.ProjectDTO{
		ID:          proj.ID(),
		Name:        proj.Name(),
		Description: proj.Description(),
		StartDate:   proj.StartDate(),
		EndDate:     proj.EndDate(),
		CreatedAt:   proj.CreatedAt(),
	}
}
