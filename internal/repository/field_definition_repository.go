package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portal-metadata-api/internal/domain"
)

// FieldDefinitionRepository defines the interface for custom field definition data access
type FieldDefinitionRepository interface {
	Create(ctx context.Context, def *domain.CustomFieldDefinition) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomFieldDefinition, error)
	FindByEntityAndName(ctx context.Context, entityType domain.EntityType, fieldName string) (*domain.CustomFieldDefinition, error)
	ListForEntity(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*domain.CustomFieldDefinition, error)
	Update(ctx context.Context, def *domain.CustomFieldDefinition) error
	NextSortOrder(ctx context.Context, entityType domain.EntityType) (int, error)
}

// fieldDefinitionRepositoryImpl is the GORM implementation of FieldDefinitionRepository
type fieldDefinitionRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldDefinitionRepository creates a new instance of FieldDefinitionRepository
func NewFieldDefinitionRepository(db *gorm.DB) FieldDefinitionRepository {
	return &fieldDefinitionRepositoryImpl{db: db}
}

// Create inserts a new field definition. The composite unique index on
// (entity_type, field_name) is the authoritative duplicate check.
func (r *fieldDefinitionRepositoryImpl) Create(ctx context.Context, def *domain.CustomFieldDefinition) error {
	return r.db.WithContext(ctx).Create(def).Error
}

// FindByID finds a field definition by ID, preloading its picklist and values
func (r *fieldDefinitionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomFieldDefinition, error) {
	var def domain.CustomFieldDefinition
	if err := r.db.WithContext(ctx).
		Preload("Picklist.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Picklist").
		Where("id = ?", id).
		First(&def).Error; err != nil {
		return nil, err
	}
	return &def, nil
}

// FindByEntityAndName finds a definition by its unique (entityType, fieldName)
// pair, active or not; returns (nil, nil) when absent
func (r *fieldDefinitionRepositoryImpl) FindByEntityAndName(ctx context.Context, entityType domain.EntityType, fieldName string) (*domain.CustomFieldDefinition, error) {
	var def domain.CustomFieldDefinition
	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND field_name = ?", entityType, fieldName).
		First(&def).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

// ListForEntity returns the definitions for an entity type ordered for
// display: by section, then sort order, then creation time.
func (r *fieldDefinitionRepositoryImpl) ListForEntity(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*domain.CustomFieldDefinition, error) {
	query := r.db.WithContext(ctx).
		Preload("Picklist.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Picklist").
		Where("entity_type = ?", entityType)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var defs []*domain.CustomFieldDefinition
	if err := query.
		Order("section ASC, sort_order ASC, created_at ASC").
		Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

// Update saves a field definition
func (r *fieldDefinitionRepositoryImpl) Update(ctx context.Context, def *domain.CustomFieldDefinition) error {
	return r.db.WithContext(ctx).Save(def).Error
}

// NextSortOrder returns the next free sort order slot for an entity type
func (r *fieldDefinitionRepositoryImpl) NextSortOrder(ctx context.Context, entityType domain.EntityType) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&domain.CustomFieldDefinition{}).
		Where("entity_type = ?", entityType).
		Select("MAX(sort_order)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}
