package service

import (
	"context"

	"github.com/google/uuid"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/repository"
)

// MockPicklistRepository is a mock implementation of PicklistRepository
type MockPicklistRepository struct {
	CreateFunc          func(ctx context.Context, picklist *domain.PicklistDefinition) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.PicklistDefinition, error)
	FindByNameKeyFunc   func(ctx context.Context, nameKey string) (*domain.PicklistDefinition, error)
	ListFunc            func(ctx context.Context) ([]*domain.PicklistDefinition, error)
	AddValueFunc        func(ctx context.Context, value *domain.PicklistValue) error
	FindValueByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.PicklistValue, error)
	FindValueByKeyFunc  func(ctx context.Context, picklistID uuid.UUID, valueKey string) (*domain.PicklistValue, error)
	FindValuesFunc      func(ctx context.Context, picklistID uuid.UUID) ([]*domain.PicklistValue, error)
	UpdateValueFunc     func(ctx context.Context, value *domain.PicklistValue) error
	ReorderFunc         func(ctx context.Context, picklistID uuid.UUID, orderedValueIDs []uuid.UUID) error
}

func (m *MockPicklistRepository) Create(ctx context.Context, picklist *domain.PicklistDefinition) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, picklist)
	}
	return nil
}

func (m *MockPicklistRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PicklistDefinition, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPicklistRepository) FindByNameKey(ctx context.Context, nameKey string) (*domain.PicklistDefinition, error) {
	if m.FindByNameKeyFunc != nil {
		return m.FindByNameKeyFunc(ctx, nameKey)
	}
	return nil, nil
}

func (m *MockPicklistRepository) List(ctx context.Context) ([]*domain.PicklistDefinition, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockPicklistRepository) AddValue(ctx context.Context, value *domain.PicklistValue) error {
	if m.AddValueFunc != nil {
		return m.AddValueFunc(ctx, value)
	}
	return nil
}

func (m *MockPicklistRepository) FindValueByID(ctx context.Context, id uuid.UUID) (*domain.PicklistValue, error) {
	if m.FindValueByIDFunc != nil {
		return m.FindValueByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPicklistRepository) FindValueByKey(ctx context.Context, picklistID uuid.UUID, valueKey string) (*domain.PicklistValue, error) {
	if m.FindValueByKeyFunc != nil {
		return m.FindValueByKeyFunc(ctx, picklistID, valueKey)
	}
	return nil, nil
}

func (m *MockPicklistRepository) FindValues(ctx context.Context, picklistID uuid.UUID) ([]*domain.PicklistValue, error) {
	if m.FindValuesFunc != nil {
		return m.FindValuesFunc(ctx, picklistID)
	}
	return nil, nil
}

func (m *MockPicklistRepository) UpdateValue(ctx context.Context, value *domain.PicklistValue) error {
	if m.UpdateValueFunc != nil {
		return m.UpdateValueFunc(ctx, value)
	}
	return nil
}

func (m *MockPicklistRepository) Reorder(ctx context.Context, picklistID uuid.UUID, orderedValueIDs []uuid.UUID) error {
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, picklistID, orderedValueIDs)
	}
	return nil
}

// MockFieldDefinitionRepository is a mock implementation of FieldDefinitionRepository
type MockFieldDefinitionRepository struct {
	CreateFunc              func(ctx context.Context, def *domain.CustomFieldDefinition) error
	FindByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.CustomFieldDefinition, error)
	FindByEntityAndNameFunc func(ctx context.Context, entityType domain.EntityType, fieldName string) (*domain.CustomFieldDefinition, error)
	ListForEntityFunc       func(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*domain.CustomFieldDefinition, error)
	UpdateFunc              func(ctx context.Context, def *domain.CustomFieldDefinition) error
	NextSortOrderFunc       func(ctx context.Context, entityType domain.EntityType) (int, error)
}

func (m *MockFieldDefinitionRepository) Create(ctx context.Context, def *domain.CustomFieldDefinition) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, def)
	}
	return nil
}

func (m *MockFieldDefinitionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CustomFieldDefinition, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) FindByEntityAndName(ctx context.Context, entityType domain.EntityType, fieldName string) (*domain.CustomFieldDefinition, error) {
	if m.FindByEntityAndNameFunc != nil {
		return m.FindByEntityAndNameFunc(ctx, entityType, fieldName)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) ListForEntity(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*domain.CustomFieldDefinition, error) {
	if m.ListForEntityFunc != nil {
		return m.ListForEntityFunc(ctx, entityType, includeInactive)
	}
	return nil, nil
}

func (m *MockFieldDefinitionRepository) Update(ctx context.Context, def *domain.CustomFieldDefinition) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, def)
	}
	return nil
}

func (m *MockFieldDefinitionRepository) NextSortOrder(ctx context.Context, entityType domain.EntityType) (int, error) {
	if m.NextSortOrderFunc != nil {
		return m.NextSortOrderFunc(ctx, entityType)
	}
	return 0, nil
}

// MockFieldValueRepository is a mock implementation of FieldValueRepository
type MockFieldValueRepository struct {
	UpsertFunc                     func(ctx context.Context, value *domain.CustomFieldValue) error
	FindByOwnerFunc                func(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.CustomFieldValue, error)
	FindByOwnerAndDefinitionFunc   func(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) (*domain.CustomFieldValue, error)
	DeleteByOwnerAndDefinitionFunc func(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) error
	DeleteForEntityFunc            func(ctx context.Context, entityType domain.EntityType, entityID string) error
	DistinctOwnersFunc             func(ctx context.Context) ([]repository.EntityRef, error)
}

func (m *MockFieldValueRepository) Upsert(ctx context.Context, value *domain.CustomFieldValue) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, value)
	}
	return nil
}

func (m *MockFieldValueRepository) FindByOwner(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.CustomFieldValue, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *MockFieldValueRepository) FindByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) (*domain.CustomFieldValue, error) {
	if m.FindByOwnerAndDefinitionFunc != nil {
		return m.FindByOwnerAndDefinitionFunc(ctx, entityType, entityID, fieldDefinitionID)
	}
	return nil, nil
}

func (m *MockFieldValueRepository) DeleteByOwnerAndDefinition(ctx context.Context, entityType domain.EntityType, entityID string, fieldDefinitionID uuid.UUID) error {
	if m.DeleteByOwnerAndDefinitionFunc != nil {
		return m.DeleteByOwnerAndDefinitionFunc(ctx, entityType, entityID, fieldDefinitionID)
	}
	return nil
}

func (m *MockFieldValueRepository) DeleteForEntity(ctx context.Context, entityType domain.EntityType, entityID string) error {
	if m.DeleteForEntityFunc != nil {
		return m.DeleteForEntityFunc(ctx, entityType, entityID)
	}
	return nil
}

func (m *MockFieldValueRepository) DistinctOwners(ctx context.Context) ([]repository.EntityRef, error) {
	if m.DistinctOwnersFunc != nil {
		return m.DistinctOwnersFunc(ctx)
	}
	return nil, nil
}

// MockPortalClient is a mock implementation of client.PortalClient
type MockPortalClient struct {
	ValidateTokenFunc func(ctx context.Context, tokenStr string) (uuid.UUID, error)
	EntityExistsFunc  func(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error)
}

func (m *MockPortalClient) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenStr)
	}
	return uuid.Nil, nil
}

func (m *MockPortalClient) EntityExists(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error) {
	if m.EntityExistsFunc != nil {
		return m.EntityExistsFunc(ctx, entityType, entityID)
	}
	return true, nil
}
