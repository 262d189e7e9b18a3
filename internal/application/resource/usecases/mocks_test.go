package usecases

import (
	"context"

	"planwise/internal/domain/resource"
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
