package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/dto"
)

// setupTestRouter returns an engine with the context keys the auth
// middleware would set on a real request.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("jwtToken", "test-token")
		c.Next()
	})
	return r
}

// setupBareRouter returns an engine without auth context, for exercising
// the unauthenticated paths.
func setupBareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockPicklistService is a mock implementation of PicklistService
type MockPicklistService struct {
	CreatePicklistFunc func(ctx context.Context, req *dto.CreatePicklistRequest) (*dto.PicklistResponse, error)
	GetPicklistFunc    func(ctx context.Context, picklistID uuid.UUID) (*dto.PicklistResponse, error)
	ListPicklistsFunc  func(ctx context.Context) ([]*dto.PicklistResponse, error)
	AddValueFunc       func(ctx context.Context, picklistID uuid.UUID, req *dto.AddPicklistValueRequest) (*dto.PicklistValueResponse, error)
	UpdateValueFunc    func(ctx context.Context, picklistID, valueID uuid.UUID, req *dto.UpdatePicklistValueRequest) (*dto.PicklistValueResponse, error)
	ReorderFunc        func(ctx context.Context, picklistID uuid.UUID, req *dto.ReorderPicklistRequest) (*dto.PicklistResponse, error)
	SeedDefaultsFunc   func(ctx context.Context) (*dto.SeedResultResponse, error)
}

func (m *MockPicklistService) CreatePicklist(ctx context.Context, req *dto.CreatePicklistRequest) (*dto.PicklistResponse, error) {
	if m.CreatePicklistFunc != nil {
		return m.CreatePicklistFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPicklistService) GetPicklist(ctx context.Context, picklistID uuid.UUID) (*dto.PicklistResponse, error) {
	if m.GetPicklistFunc != nil {
		return m.GetPicklistFunc(ctx, picklistID)
	}
	return nil, nil
}

func (m *MockPicklistService) ListPicklists(ctx context.Context) ([]*dto.PicklistResponse, error) {
	if m.ListPicklistsFunc != nil {
		return m.ListPicklistsFunc(ctx)
	}
	return nil, nil
}

func (m *MockPicklistService) AddValue(ctx context.Context, picklistID uuid.UUID, req *dto.AddPicklistValueRequest) (*dto.PicklistValueResponse, error) {
	if m.AddValueFunc != nil {
		return m.AddValueFunc(ctx, picklistID, req)
	}
	return nil, nil
}

func (m *MockPicklistService) UpdateValue(ctx context.Context, picklistID, valueID uuid.UUID, req *dto.UpdatePicklistValueRequest) (*dto.PicklistValueResponse, error) {
	if m.UpdateValueFunc != nil {
		return m.UpdateValueFunc(ctx, picklistID, valueID, req)
	}
	return nil, nil
}

func (m *MockPicklistService) Reorder(ctx context.Context, picklistID uuid.UUID, req *dto.ReorderPicklistRequest) (*dto.PicklistResponse, error) {
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, picklistID, req)
	}
	return nil, nil
}

func (m *MockPicklistService) SeedDefaults(ctx context.Context) (*dto.SeedResultResponse, error) {
	if m.SeedDefaultsFunc != nil {
		return m.SeedDefaultsFunc(ctx)
	}
	return nil, nil
}

// MockFieldDefinitionService is a mock implementation of FieldDefinitionService
type MockFieldDefinitionService struct {
	DefineFieldFunc     func(ctx context.Context, entityType domain.EntityType, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	GetFieldFunc        func(ctx context.Context, fieldID uuid.UUID) (*dto.FieldDefinitionResponse, error)
	ListFieldsFunc      func(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*dto.FieldDefinitionResponse, error)
	UpdateFieldFunc     func(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	DeactivateFieldFunc func(ctx context.Context, fieldID uuid.UUID) error
	ListFieldTypesFunc  func() []*dto.FieldTypeInfoResponse
	SeedDefaultsFunc    func(ctx context.Context, entityType domain.EntityType) (*dto.SeedResultResponse, error)
}

func (m *MockFieldDefinitionService) DefineField(ctx context.Context, entityType domain.EntityType, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	if m.DefineFieldFunc != nil {
		return m.DefineFieldFunc(ctx, entityType, req)
	}
	return nil, nil
}

func (m *MockFieldDefinitionService) GetField(ctx context.Context, fieldID uuid.UUID) (*dto.FieldDefinitionResponse, error) {
	if m.GetFieldFunc != nil {
		return m.GetFieldFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *MockFieldDefinitionService) ListFields(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*dto.FieldDefinitionResponse, error) {
	if m.ListFieldsFunc != nil {
		return m.ListFieldsFunc(ctx, entityType, includeInactive)
	}
	return nil, nil
}

func (m *MockFieldDefinitionService) UpdateField(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	if m.UpdateFieldFunc != nil {
		return m.UpdateFieldFunc(ctx, fieldID, req)
	}
	return nil, nil
}

func (m *MockFieldDefinitionService) DeactivateField(ctx context.Context, fieldID uuid.UUID) error {
	if m.DeactivateFieldFunc != nil {
		return m.DeactivateFieldFunc(ctx, fieldID)
	}
	return nil
}

func (m *MockFieldDefinitionService) ListFieldTypes() []*dto.FieldTypeInfoResponse {
	if m.ListFieldTypesFunc != nil {
		return m.ListFieldTypesFunc()
	}
	return nil
}

func (m *MockFieldDefinitionService) SeedDefaults(ctx context.Context, entityType domain.EntityType) (*dto.SeedResultResponse, error) {
	if m.SeedDefaultsFunc != nil {
		return m.SeedDefaultsFunc(ctx, entityType)
	}
	return nil, nil
}

// MockValueService is a mock implementation of ValueService
type MockValueService struct {
	SetValueFunc              func(ctx context.Context, entityType domain.EntityType, entityID, fieldName string, req *dto.SetValueRequest) (*dto.SetValueResponse, error)
	GetValuesFunc             func(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.EntityValuesResponse, error)
	DeleteValuesForEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID string) error
}

func (m *MockValueService) SetValue(ctx context.Context, entityType domain.EntityType, entityID, fieldName string, req *dto.SetValueRequest) (*dto.SetValueResponse, error) {
	if m.SetValueFunc != nil {
		return m.SetValueFunc(ctx, entityType, entityID, fieldName, req)
	}
	return nil, nil
}

func (m *MockValueService) GetValues(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.EntityValuesResponse, error) {
	if m.GetValuesFunc != nil {
		return m.GetValuesFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *MockValueService) DeleteValuesForEntity(ctx context.Context, entityType domain.EntityType, entityID string) error {
	if m.DeleteValuesForEntityFunc != nil {
		return m.DeleteValuesForEntityFunc(ctx, entityType, entityID)
	}
	return nil
}

// MockProjectionService is a mock implementation of ProjectionService
type MockProjectionService struct {
	ProjectFunc func(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.ProjectionResponse, error)
}

func (m *MockProjectionService) Project(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.ProjectionResponse, error) {
	if m.ProjectFunc != nil {
		return m.ProjectFunc(ctx, entityType, entityID)
	}
	return nil, nil
}
