package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portal-metadata-api/internal/domain"
)

// ErrValueSetMismatch is returned by Reorder when the submitted id set is not
// exactly the picklist's current value set.
var ErrValueSetMismatch = errors.New("ordered value ids do not match the picklist value set")

// PicklistRepository defines the interface for picklist data access
type PicklistRepository interface {
	Create(ctx context.Context, picklist *domain.PicklistDefinition) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PicklistDefinition, error)
	FindByNameKey(ctx context.Context, nameKey string) (*domain.PicklistDefinition, error)
	List(ctx context.Context) ([]*domain.PicklistDefinition, error)
	AddValue(ctx context.Context, value *domain.PicklistValue) error
	FindValueByID(ctx context.Context, id uuid.UUID) (*domain.PicklistValue, error)
	FindValueByKey(ctx context.Context, picklistID uuid.UUID, valueKey string) (*domain.PicklistValue, error)
	FindValues(ctx context.Context, picklistID uuid.UUID) ([]*domain.PicklistValue, error)
	UpdateValue(ctx context.Context, value *domain.PicklistValue) error
	Reorder(ctx context.Context, picklistID uuid.UUID, orderedValueIDs []uuid.UUID) error
}

// picklistRepositoryImpl is the GORM implementation of PicklistRepository
type picklistRepositoryImpl struct {
	db *gorm.DB
}

// NewPicklistRepository creates a new instance of PicklistRepository
func NewPicklistRepository(db *gorm.DB) PicklistRepository {
	return &picklistRepositoryImpl{db: db}
}

// Create inserts a new picklist definition. The unique index on name_key is
// the authoritative duplicate check; service-level lookups only shape errors.
func (r *picklistRepositoryImpl) Create(ctx context.Context, picklist *domain.PicklistDefinition) error {
	return r.db.WithContext(ctx).Create(picklist).Error
}

// FindByID finds a picklist with its values ordered by sort_order
func (r *picklistRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.PicklistDefinition, error) {
	var picklist domain.PicklistDefinition
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", id).
		First(&picklist).Error; err != nil {
		return nil, err
	}
	return &picklist, nil
}

// FindByNameKey finds a picklist by its normalized name; returns (nil, nil) when absent
func (r *picklistRepositoryImpl) FindByNameKey(ctx context.Context, nameKey string) (*domain.PicklistDefinition, error) {
	var picklist domain.PicklistDefinition
	if err := r.db.WithContext(ctx).
		Where("name_key = ?", nameKey).
		First(&picklist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &picklist, nil
}

// List returns all picklists with their values, ordered by name
func (r *picklistRepositoryImpl) List(ctx context.Context) ([]*domain.PicklistDefinition, error) {
	var picklists []*domain.PicklistDefinition
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("name_key ASC").
		Find(&picklists).Error; err != nil {
		return nil, err
	}
	return picklists, nil
}

// AddValue appends a new value to a picklist
func (r *picklistRepositoryImpl) AddValue(ctx context.Context, value *domain.PicklistValue) error {
	return r.db.WithContext(ctx).Create(value).Error
}

// FindValueByID finds a picklist value by ID
func (r *picklistRepositoryImpl) FindValueByID(ctx context.Context, id uuid.UUID) (*domain.PicklistValue, error) {
	var value domain.PicklistValue
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&value).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

// FindValueByKey finds a value by its stable key within a picklist, active or
// not; returns (nil, nil) when absent
func (r *picklistRepositoryImpl) FindValueByKey(ctx context.Context, picklistID uuid.UUID, valueKey string) (*domain.PicklistValue, error) {
	var value domain.PicklistValue
	if err := r.db.WithContext(ctx).
		Where("picklist_id = ? AND value = ?", picklistID, valueKey).
		First(&value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &value, nil
}

// FindValues returns all values of a picklist ordered by sort_order
func (r *picklistRepositoryImpl) FindValues(ctx context.Context, picklistID uuid.UUID) ([]*domain.PicklistValue, error) {
	var values []*domain.PicklistValue
	if err := r.db.WithContext(ctx).
		Where("picklist_id = ?", picklistID).
		Order("sort_order ASC").
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// UpdateValue updates a picklist value
func (r *picklistRepositoryImpl) UpdateValue(ctx context.Context, value *domain.PicklistValue) error {
	return r.db.WithContext(ctx).Save(value).Error
}

// Reorder reassigns sort orders 0..n-1 following orderedValueIDs inside one
// transaction. The current value set is re-read inside the transaction, so a
// reorder racing with a concurrent AddValue either sees the new value (and
// fails with ErrValueSetMismatch) or is serialized after it; no partial
// reordering is ever observable.
func (r *picklistRepositoryImpl) Reorder(ctx context.Context, picklistID uuid.UUID, orderedValueIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []*domain.PicklistValue
		if err := tx.Where("picklist_id = ?", picklistID).Find(&current).Error; err != nil {
			return err
		}

		if len(current) != len(orderedValueIDs) {
			return ErrValueSetMismatch
		}
		currentIDs := make(map[uuid.UUID]bool, len(current))
		for _, v := range current {
			currentIDs[v.ID] = true
		}
		for _, id := range orderedValueIDs {
			if !currentIDs[id] {
				return ErrValueSetMismatch
			}
			delete(currentIDs, id)
		}

		for i, id := range orderedValueIDs {
			if err := tx.Model(&domain.PicklistValue{}).
				Where("id = ?", id).
				Update("sort_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
