package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portal-metadata-api/internal/domain"
)

// EntityRef identifies one entity instance that owns stored custom values
type EntityRef struct {
	EntityType domain.EntityType
	EntityID   string
}

// FieldValueRepository defines the interface for custom field value data access
type FieldValueRepository interface {
	Upsert(ctx context.Context, value *domain.CustomFieldValue) error
	FindByOwner(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.CustomFieldValue, error)
	FindByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) (*domain.CustomFieldValue, error)
	DeleteByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) error
	DeleteForEntity(ctx context.Context, entityType domain.EntityType, entityID string) error
	DistinctOwners(ctx context.Context) ([]EntityRef, error)
}

// fieldValueRepositoryImpl is the GORM implementation of FieldValueRepository
type fieldValueRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldValueRepository creates a new instance of FieldValueRepository
func NewFieldValueRepository(db *gorm.DB) FieldValueRepository {
	return &fieldValueRepositoryImpl{db: db}
}

// Upsert writes a value with last-writer-wins semantics on the
// (entity_type, entity_id, field_definition_id) key. The conflict target is
// the unique index, so concurrent writers cannot produce duplicate rows.
func (r *fieldValueRepositoryImpl) Upsert(ctx context.Context, value *domain.CustomFieldValue) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "entity_type"},
				{Name: "entity_id"},
				{Name: "field_definition_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"kind",
				"value_string",
				"value_number",
				"value_bool",
				"value_time",
				"value_set",
				"value_ref",
				"updated_at",
			}),
		}).
		Create(value).Error
}

// FindByOwner returns all values stored for one entity instance
func (r *fieldValueRepositoryImpl) FindByOwner(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.CustomFieldValue, error) {
	var values []*domain.CustomFieldValue
	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// FindByOwnerAndDefinition returns one stored value; (nil, nil) when absent
func (r *fieldValueRepositoryImpl) FindByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) (*domain.CustomFieldValue, error) {
	var value domain.CustomFieldValue
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND field_definition_id = ?", entityType, entityID, fieldDefinitionID).
		First(&value).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

// DeleteByOwnerAndDefinition clears one stored value; a missing row is a no-op
func (r *fieldValueRepositoryImpl) DeleteByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND field_definition_id = ?", entityType, entityID, fieldDefinitionID).
		Delete(&domain.CustomFieldValue{}).Error
}

// DeleteForEntity removes all values owned by one entity instance. Invoked by
// the portal's entity-deletion path; deleting for an entity with no values is
// a no-op, which makes the cascade idempotent.
func (r *fieldValueRepositoryImpl) DeleteForEntity(ctx context.Context, entityType domain.EntityType, entityID string) error {
	return r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&domain.CustomFieldValue{}).Error
}

// DistinctOwners lists every entity instance currently holding values. The
// orphan sweep job uses this to find values whose owner has been deleted in
// the core portal without the cascade having run.
func (r *fieldValueRepositoryImpl) DistinctOwners(ctx context.Context) ([]EntityRef, error) {
	var refs []EntityRef
	if err := r.db.WithContext(ctx).
		Model(&domain.CustomFieldValue{}).
		Distinct("entity_type", "entity_id").
		Order("entity_type ASC, entity_id ASC").
		Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}
