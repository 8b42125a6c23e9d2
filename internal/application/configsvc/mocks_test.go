package configsvc

import (
	"context"

	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock implementation of taxonomy.ItemRepository
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
	return args.Get(0).([]taxonomy.Item), args.Error(1)
}

func (m *MockItemRepository) FindAllActive(ctx context.Context) ([]taxonomy.Item, error) {
	args := m.Called(ctx)
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

// MockNavigationRepository is a mock implementation of taxonomy.NavigationRepository
type MockNavigationRepository struct {
	mock.Mock
}

func (m *MockNavigationRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.NavigationItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.NavigationItem), args.Error(1)
}

func (m *MockNavigationRepository) FindAll(ctx context.Context, activeOnly bool) ([]taxonomy.NavigationItem, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]taxonomy.NavigationItem), args.Error(1)
}

func (m *MockNavigationRepository) Save(ctx context.Context, item *taxonomy.NavigationItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockNavigationRepository) Reorder(ctx context.Context, orderedIDs []uuid.UUID) error {
	args := m.Called(ctx, orderedIDs)
	return args.Error(0)
}

// MockAliasRepository is a mock implementation of taxonomy.AliasRepository
type MockAliasRepository struct {
	mock.Mock
}

func (m *MockAliasRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.FieldAlias, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.FieldAlias), args.Error(1)
}

func (m *MockAliasRepository) FindAllActive(ctx context.Context) ([]taxonomy.FieldAlias, error) {
	args := m.Called(ctx)
	return args.Get(0).([]taxonomy.FieldAlias), args.Error(1)
}

func (m *MockAliasRepository) FindByField(ctx context.Context, fieldName string) ([]taxonomy.FieldAlias, error) {
	args := m.Called(ctx, fieldName)
	return args.Get(0).([]taxonomy.FieldAlias), args.Error(1)
}

func (m *MockAliasRepository) Save(ctx context.Context, alias *taxonomy.FieldAlias) error {
	args := m.Called(ctx, alias)
	return args.Error(0)
}
