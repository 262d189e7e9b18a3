package usecases

import (
	"context"

	"planwise/internal/domain/project"
	"planwise/internal/domain/resource"
	"planwise/internal/domain/scenario"
	"planwise/internal/shared/logger"
)

type mockResourceRepository struct {
	CreateFunc  func(ctx context.Context, res *resource.Resource) error
	GetByIDFunc func(ctx context.Context, id uint) (*resource.Resource, error)
	ListFunc    func(ctx context.Context) ([]*resource.Resource, error)
}

func (m *mockResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, res)
	}
	return nil
}

func (m *mockResourceRepository) GetByID(ctx context.Context, id uint) (*resource.Resource, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockResourceRepository) List(ctx context.Context) ([]*resource.Resource, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockSkillRepository struct {
	CreateFunc           func(ctx context.Context, skill *resource.Skill) error
	GetByResourceIDFunc  func(ctx context.Context, resourceID uint) ([]*resource.Skill, error)
	GetByResourceIDsFunc func(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Skill, error)
}

func (m *mockSkillRepository) Create(ctx context.Context, skill *resource.Skill) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, skill)
	}
	return nil
}

func (m *mockSkillRepository) GetByResourceID(ctx context.Context, resourceID uint) ([]*resource.Skill, error) {
	if m.GetByResourceIDFunc != nil {
		return m.GetByResourceIDFunc(ctx, resourceID)
	}
	return nil, nil
}

func (m *mockSkillRepository) GetByResourceIDs(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Skill, error) {
	if m.GetByResourceIDsFunc != nil {
		return m.GetByResourceIDsFunc(ctx, resourceIDs)
	}
	return map[uint][]*resource.Skill{}, nil
}

type mockAllocationRepository struct {
	CreateFunc               func(ctx context.Context, alloc *resource.Allocation) error
	GetByProjectIDFunc       func(ctx context.Context, projectID uint) ([]*resource.Allocation, error)
	GetByResourceIDsFunc     func(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Allocation, error)
	SumHoursByResourceIDFunc func(ctx context.Context, resourceID uint) (float64, error)
}

func (m *mockAllocationRepository) Create(ctx context.Context, alloc *resource.Allocation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, alloc)
	}
	return nil
}

func (m *mockAllocationRepository) GetByProjectID(ctx context.Context, projectID uint) ([]*resource.Allocation, error) {
	if m.GetByProjectIDFunc != nil {
		return m.GetByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockAllocationRepository) GetByResourceIDs(ctx context.Context, resourceIDs []uint) (map[uint][]*resource.Allocation, error) {
	if m.GetByResourceIDsFunc != nil {
		return m.GetByResourceIDsFunc(ctx, resourceIDs)
	}
	return map[uint][]*resource.Allocation{}, nil
}

func (m *mockAllocationRepository) SumHoursByResourceID(ctx context.Context, resourceID uint) (float64, error) {
	if m.SumHoursByResourceIDFunc != nil {
		return m.SumHoursByResourceIDFunc(ctx, resourceID)
	}
	return 0, nil
}

type mockProjectRepository struct {
	CreateFunc   func(ctx context.Context, proj *project.Project) error
	GetByIDFunc  func(ctx context.Context, id uint) (*project.Project, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*project.Project, error)
	ListFunc     func(ctx context.Context) ([]*project.Project, error)
}

func (m *mockProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, proj)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*project.Project, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*project.Project{}, nil
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockRequirementRepository struct {
	CreateFunc         func(ctx context.Context, req *project.Requirement) error
	GetByProjectIDFunc func(ctx context.Context, projectID uint) ([]*project.Requirement, error)
}

func (m *mockRequirementRepository) Create(ctx context.Context, req *project.Requirement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequirementRepository) GetByProjectID(ctx context.Context, projectID uint) ([]*project.Requirement, error) {
	if m.GetByProjectIDFunc != nil {
		return m.GetByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

type mockScenarioRepository struct {
	CreateFunc   func(ctx context.Context, sc *scenario.Scenario) error
	GetByIDFunc  func(ctx context.Context, id uint) (*scenario.Scenario, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*scenario.Scenario, error)
}

func (m *mockScenarioRepository) Create(ctx context.Context, sc *scenario.Scenario) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sc)
	}
	return nil
}

func (m *mockScenarioRepository) GetByID(ctx context.Context, id uint) (*scenario.Scenario, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockScenarioRepository) GetByIDs(ctx context.Context, ids []uint) ([]*scenario.Scenario, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
