package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/dto"
	"portal-metadata-api/internal/metrics"
	"portal-metadata-api/internal/repository"
	"portal-metadata-api/internal/response"
)

// inactiveFieldWarning is returned alongside writes to fields whose
// definition has been deactivated. The write still succeeds so integrations
// keep working while administrators retire a field.
const inactiveFieldWarning = "field definition is inactive"

// ValueService defines the interface for custom field value business logic
type ValueService interface {
	SetValue(ctx context.Context, entityType domain.EntityType, entityID, fieldName string, req *dto.SetValueRequest) (*dto.SetValueResponse, error)
	GetValues(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.EntityValuesResponse, error)
	DeleteValuesForEntity(ctx context.Context, entityType domain.EntityType, entityID string) error
}

// valueServiceImpl is the implementation of ValueService
type valueServiceImpl struct {
	fieldDefRepo repository.FieldDefinitionRepository
	valueRepo    repository.FieldValueRepository
	validator    ValidationEngine
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewValueService creates a new instance of ValueService
func NewValueService(
	fieldDefRepo repository.FieldDefinitionRepository,
	valueRepo repository.FieldValueRepository,
	validator ValidationEngine,
	logger *zap.Logger,
	m *metrics.Metrics,
) ValueService {
	return &valueServiceImpl{
		fieldDefRepo: fieldDefRepo,
		valueRepo:    valueRepo,
		validator:    validator,
		logger:       logger,
		metrics:      m,
	}
}

// SetValue validates and stores one custom field value. A null value clears
// the stored value unless the field is required. Writes are last-writer-wins
// per (entity, field).
func (s *valueServiceImpl) SetValue(ctx context.Context, entityType domain.EntityType, entityID, fieldName string, req *dto.SetValueRequest) (*dto.SetValueResponse, error) {
	if !domain.IsValidEntityType(entityType) {
		return nil, response.NewValidationError(fmt.Sprintf("Unknown entity type: %s", entityType), "")
	}

	def, err := s.fieldDefRepo.FindByEntityAndName(ctx, entityType, fieldName)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve field", err.Error())
	}
	if def == nil {
		return nil, response.NewAppError(response.ErrCodeUnknownField,
			fmt.Sprintf("No field '%s' is defined on %s", fieldName, entityType), "")
	}

	warning := ""
	if !def.IsActive {
		warning = inactiveFieldWarning
	}

	if req.Value == nil {
		if def.IsRequired {
			err := response.NewAppError(response.ErrCodeRequiredFieldMissing,
				fmt.Sprintf("Field '%s' is required and cannot be cleared", fieldName), "")
			s.recordValidationFailure(err)
			return nil, err
		}
		if err := s.valueRepo.DeleteByOwnerAndDefinition(ctx, entityType, entityID, def.ID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to clear value", err.Error())
		}
		return &dto.SetValueResponse{
			FieldName: fieldName,
			Value:     nil,
			Warning:   warning,
			UpdatedAt: time.Now().UTC(),
		}, nil
	}

	typed, err := s.validator.Validate(ctx, def, req.Value)
	if err != nil {
		s.recordValidationFailure(err)
		return nil, err
	}

	row := &domain.CustomFieldValue{
		BaseModel:         domain.BaseModel{ID: uuid.New()},
		EntityType:        entityType,
		EntityID:          entityID,
		FieldDefinitionID: def.ID,
	}
	if err := typed.ToRow(row); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode value", err.Error())
	}
	if err := s.valueRepo.Upsert(ctx, row); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store value", err.Error())
	}

	if s.metrics != nil {
		s.metrics.RecordValueWrite(string(entityType), string(def.FieldType))
	}

	return &dto.SetValueResponse{
		FieldName: fieldName,
		Value:     presentValue(def, typed),
		Warning:   warning,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// GetValues returns all stored values of one entity instance keyed by field
// name. Values of deactivated definitions are still returned so history stays
// readable.
func (s *valueServiceImpl) GetValues(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.EntityValuesResponse, error) {
	if !domain.IsValidEntityType(entityType) {
		return nil, response.NewValidationError(fmt.Sprintf("Unknown entity type: %s", entityType), "")
	}

	defs, err := s.fieldDefRepo.ListForEntity(ctx, entityType, true)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list field definitions", err.Error())
	}
	defsByID := make(map[uuid.UUID]*domain.CustomFieldDefinition, len(defs))
	for _, def := range defs {
		defsByID[def.ID] = def
	}

	rows, err := s.valueRepo.FindByOwner(ctx, entityType, entityID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch values", err.Error())
	}

	values := make(map[string]interface{}, len(rows))
	for _, row := range rows {
		def, ok := defsByID[row.FieldDefinitionID]
		if !ok {
			// Row references a definition that no longer exists; the orphan
			// sweep or an entity cascade will clean it up.
			s.logger.Warn("Stored value references unknown field definition",
				zap.String("entity_type", string(entityType)),
				zap.String("entity_id", entityID),
				zap.String("field_definition_id", row.FieldDefinitionID.String()),
			)
			continue
		}
		typed, err := row.FromRow()
		if err != nil {
			s.logger.Warn("Stored value is unreadable",
				zap.String("field_name", def.FieldName),
				zap.Error(err),
			)
			continue
		}
		values[def.FieldName] = presentValue(def, typed)
	}

	return &dto.EntityValuesResponse{
		EntityType: string(entityType),
		EntityID:   entityID,
		Values:     values,
	}, nil
}

// DeleteValuesForEntity removes every value owned by one entity instance.
// The portal calls this when the entity is deleted; repeating the call is a
// no-op.
func (s *valueServiceImpl) DeleteValuesForEntity(ctx context.Context, entityType domain.EntityType, entityID string) error {
	if !domain.IsValidEntityType(entityType) {
		return response.NewValidationError(fmt.Sprintf("Unknown entity type: %s", entityType), "")
	}
	if err := s.valueRepo.DeleteForEntity(ctx, entityType, entityID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete values", err.Error())
	}
	s.logger.Info("Deleted custom field values for entity",
		zap.String("entity_type", string(entityType)),
		zap.String("entity_id", entityID),
	)
	return nil
}

func (s *valueServiceImpl) recordValidationFailure(err error) {
	if s.metrics == nil {
		return
	}
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		s.metrics.RecordValidationFailure(appErr.Code)
	}
}

// presentValue converts a typed value to its wire representation: the same
// shape clients submitted it in
func presentValue(def *domain.CustomFieldDefinition, v domain.TypedValue) interface{} {
	switch v.Kind {
	case domain.StorageKindString:
		return v.Str
	case domain.StorageKindNumber:
		return v.Num
	case domain.StorageKindBoolean:
		return v.Bool
	case domain.StorageKindDate:
		if def.FieldType == domain.FieldTypeDate {
			return v.Time.Format(dateLayout)
		}
		return v.Time.Format(time.RFC3339)
	case domain.StorageKindStringSet:
		return v.Set
	case domain.StorageKindReference:
		return v.Ref
	default:
		return nil
	}
}
