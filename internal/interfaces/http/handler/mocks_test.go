package handler

import (
	"context"

	"github.com/execdash/backend/internal/domain/dashboard"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInitiativeRepository is a testify mock of dashboard.InitiativeRepository
type MockInitiativeRepository struct {
	mock.Mock
}

func (m *MockInitiativeRepository) FindByID(ctx context.Context, id uuid.UUID) (*dashboard.Initiative, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Initiative), args.Error(1)
}

func (m *MockInitiativeRepository) FindAll(ctx context.Context, filter dashboard.InitiativeFilter) ([]dashboard.Initiative, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]dashboard.Initiative), args.Get(1).(int64), args.Error(2)
}

func (m *MockInitiativeRepository) Save(ctx context.Context, initiative *dashboard.Initiative) error {
	args := m.Called(ctx, initiative)
	return args.Error(0)
}

func (m *MockInitiativeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemRepository is a testify mock of taxonomy.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Item), args.Error(1)
}

func (m *MockItemRepository) FindByCategory(ctx context.Context, category taxonomy.Category, activeOnly bool) ([]taxonomy.Item, error) {
	args := m.Called(ctx, category, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]taxonomy.Item), args.Error(1)
}

func (m *MockItemRepository) FindAllActive(ctx context.Context) ([]taxonomy.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]taxonomy.Item), args.Error(1)
}

func (m *MockItemRepository) FindActiveByLabel(ctx context.Context, category taxonomy.Category, label string) (*taxonomy.Item, error) {
	args := m.Called(ctx, category, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Item), args.Error(1)
}

func (m *MockItemRepository) MaxSortOrder(ctx context.Context, category taxonomy.Category) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *taxonomy.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Reorder(ctx context.Context, category taxonomy.Category, orderedIDs []uuid.UUID) error {
	args := m.Called(ctx, category, orderedIDs)
	return args.Error(0)
}
