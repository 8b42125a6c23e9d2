package persistence

import (
	"context"
	"errors"

	"github.com/execdash/backend/internal/domain/shared"
	"github.com/execdash/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFieldAliasRepository implements taxonomy.AliasRepository using GORM
type GormFieldAliasRepository struct {
	db *gorm.DB
}

// NewGormFieldAliasRepository creates a new GormFieldAliasRepository
func NewGormFieldAliasRepository(db *gorm.DB) *GormFieldAliasRepository {
	return &GormFieldAliasRepository{db: db}
}

// FindByID finds an alias by its ID
func (r *GormFieldAliasRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.FieldAlias, error) {
	var alias taxonomy.FieldAlias
	if err := r.db.WithContext(ctx).First(&alias, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &alias, nil
}

// FindAllActive returns every active alias
func (r *GormFieldAliasRepository) FindAllActive(ctx context.Context) ([]taxonomy.FieldAlias, error) {
	var aliases []taxonomy.FieldAlias
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("field_name ASC, raw_value ASC").
		Find(&aliases).Error; err != nil {
		return nil, err
	}
	return aliases, nil
}

// FindByField returns the active aliases of one field
func (r *GormFieldAliasRepository) FindByField(ctx context.Context, fieldName string) ([]taxonomy.FieldAlias, error) {
	var aliases []taxonomy.FieldAlias
	if err := r.db.WithContext(ctx).
		Where("field_name = ? AND is_active = ?", fieldName, true).
		Order("raw_value ASC").
		Find(&aliases).Error; err != nil {
		return nil, err
	}
	return aliases, nil
}

// Save creates or updates an alias
func (r *GormFieldAliasRepository) Save(ctx context.Context, alias *taxonomy.FieldAlias) error {
	return translateError(r.db.WithContext(ctx).Save(alias).Error)
}
