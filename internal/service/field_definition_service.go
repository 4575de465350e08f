package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/dto"
	"portal-metadata-api/internal/metrics"
	"portal-metadata-api/internal/repository"
	"portal-metadata-api/internal/response"
)

// FieldDefinitionService defines the interface for custom field definition business logic
type FieldDefinitionService interface {
	DefineField(ctx context.Context, entityType domain.EntityType, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	GetField(ctx context.Context, fieldID uuid.UUID) (*dto.FieldDefinitionResponse, error)
	ListFields(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*dto.FieldDefinitionResponse, error)
	UpdateField(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error)
	DeactivateField(ctx context.Context, fieldID uuid.UUID) error
	ListFieldTypes() []*dto.FieldTypeInfoResponse
	SeedDefaults(ctx context.Context, entityType domain.EntityType) (*dto.SeedResultResponse, error)
}

// fieldDefinitionServiceImpl is the implementation of FieldDefinitionService
type fieldDefinitionServiceImpl struct {
	fieldDefRepo repository.FieldDefinitionRepository
	picklistRepo repository.PicklistRepository
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewFieldDefinitionService creates a new instance of FieldDefinitionService
func NewFieldDefinitionService(
	fieldDefRepo repository.FieldDefinitionRepository,
	picklistRepo repository.PicklistRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) FieldDefinitionService {
	return &fieldDefinitionServiceImpl{
		fieldDefRepo: fieldDefRepo,
		picklistRepo: picklistRepo,
		logger:       logger,
		metrics:      m,
	}
}

// DefineField creates a new custom field definition on an entity type
func (s *fieldDefinitionServiceImpl) DefineField(ctx context.Context, entityType domain.EntityType, req *dto.CreateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	if !domain.IsValidEntityType(entityType) {
		return nil, response.NewValidationError(fmt.Sprintf("Unknown entity type: %s", entityType), "")
	}
	if !domain.IsValidFieldName(req.FieldName) {
		return nil, response.NewAppError(response.ErrCodeInvalidFieldName,
			fmt.Sprintf("Field name '%s' may only contain letters, digits, and underscores", req.FieldName), "")
	}
	fieldType, ok := domain.ParseFieldType(req.FieldType)
	if !ok {
		return nil, response.NewValidationError(fmt.Sprintf("Unknown field type: %s", req.FieldType), "")
	}
	info, _ := domain.Describe(fieldType)

	existing, err := s.fieldDefRepo.FindByEntityAndName(ctx, entityType, req.FieldName)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check field name", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeDuplicateField,
			fmt.Sprintf("Field '%s' is already defined on %s", req.FieldName, entityType), "")
	}

	def := &domain.CustomFieldDefinition{
		BaseModel:       domain.BaseModel{ID: uuid.New()},
		EntityType:      entityType,
		FieldName:       req.FieldName,
		DisplayLabel:    req.DisplayLabel,
		FieldType:       fieldType,
		DefaultValue:    req.DefaultValue,
		HelpText:        req.HelpText,
		Section:         req.Section,
		MinValue:        req.MinValue,
		MaxValue:        req.MaxValue,
		IsRequired:      req.IsRequired,
		IsSearchable:    req.IsSearchable,
		IsVisibleInList: req.IsVisibleInList,
		IsActive:        true,
	}

	if err := s.applyOptionSource(ctx, def, info, req.PicklistID, req.InlineOptions, req.LookupEntityType); err != nil {
		return nil, err
	}

	if def.MinValue != nil && def.MaxValue != nil && *def.MinValue > *def.MaxValue {
		return nil, response.NewValidationError("minValue must not exceed maxValue", "")
	}
	if (def.MinValue != nil || def.MaxValue != nil) && info.StorageKind != domain.StorageKindNumber {
		return nil, response.NewValidationError(
			fmt.Sprintf("Numeric range is not applicable to %s fields", fieldType), "")
	}

	if req.SortOrder != nil {
		def.SortOrder = *req.SortOrder
	} else {
		next, err := s.fieldDefRepo.NextSortOrder(ctx, entityType)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to assign sort order", err.Error())
		}
		def.SortOrder = next
	}

	if err := s.fieldDefRepo.Create(ctx, def); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create field definition", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementFieldDefinitionCreated()
	}
	s.logger.Info("Defined custom field",
		zap.String("entity_type", string(entityType)),
		zap.String("field_name", def.FieldName),
		zap.String("field_type", string(fieldType)),
		actorField(ctx),
	)

	return toFieldDefinitionResponse(def), nil
}

// applyOptionSource validates and assigns the picklist or lookup wiring of a
// definition according to its field type requirements.
func (s *fieldDefinitionServiceImpl) applyOptionSource(ctx context.Context, def *domain.CustomFieldDefinition, info domain.TypeInfo, picklistID *uuid.UUID, inlineOptions []string, lookupEntityType *string) error {
	if info.RequiresPicklist {
		switch {
		case picklistID != nil && len(inlineOptions) > 0:
			return response.NewValidationError("Provide either a picklist reference or inline options, not both", "")
		case picklistID != nil:
			if _, err := s.picklistRepo.FindByID(ctx, *picklistID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewAppError(response.ErrCodeMissingPicklistReference,
						fmt.Sprintf("Picklist %s does not exist", picklistID), "")
				}
				return response.NewAppError(response.ErrCodeInternal, "Failed to resolve picklist", err.Error())
			}
			def.PicklistID = picklistID
			def.InlineOptions = nil
		case len(inlineOptions) > 0:
			encoded, err := json.Marshal(inlineOptions)
			if err != nil {
				return response.NewAppError(response.ErrCodeInternal, "Failed to encode inline options", err.Error())
			}
			def.PicklistID = nil
			def.InlineOptions = datatypes.JSON(encoded)
		default:
			return response.NewAppError(response.ErrCodeMissingPicklistReference,
				fmt.Sprintf("%s fields need a picklist reference or inline options", def.FieldType), "")
		}
	} else if picklistID != nil || len(inlineOptions) > 0 {
		return response.NewValidationError(
			fmt.Sprintf("%s fields do not take picklist options", def.FieldType), "")
	}

	if info.RequiresLookupTarget {
		if lookupEntityType == nil {
			return response.NewAppError(response.ErrCodeMissingLookupTarget,
				"lookup fields need a lookupEntityType", "")
		}
		target := domain.EntityType(*lookupEntityType)
		if !domain.IsValidEntityType(target) {
			return response.NewAppError(response.ErrCodeMissingLookupTarget,
				fmt.Sprintf("Unknown lookup entity type: %s", *lookupEntityType), "")
		}
		def.LookupEntityType = &target
	} else if lookupEntityType != nil {
		return response.NewValidationError(
			fmt.Sprintf("%s fields do not take a lookup target", def.FieldType), "")
	}

	return nil
}

// GetField retrieves a field definition by id
func (s *fieldDefinitionServiceImpl) GetField(ctx context.Context, fieldID uuid.UUID) (*dto.FieldDefinitionResponse, error) {
	def, err := s.fieldDefRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Field definition not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field definition", err.Error())
	}
	return toFieldDefinitionResponse(def), nil
}

// ListFields returns the field definitions of an entity type in display order
func (s *fieldDefinitionServiceImpl) ListFields(ctx context.Context, entityType domain.EntityType, includeInactive bool) ([]*dto.FieldDefinitionResponse, error) {
	if !domain.IsValidEntityType(entityType) {
		return nil, response.NewValidationError(fmt.Sprintf("Unknown entity type: %s", entityType), "")
	}
	defs, err := s.fieldDefRepo.ListForEntity(ctx, entityType, includeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list field definitions", err.Error())
	}
	responses := make([]*dto.FieldDefinitionResponse, len(defs))
	for i, def := range defs {
		responses[i] = toFieldDefinitionResponse(def)
	}
	return responses, nil
}

// UpdateField modifies the mutable attributes of a field definition.
// EntityType, FieldName, and FieldType are immutable; submitting a different
// value for them is an error rather than a silent no-op.
func (s *fieldDefinitionServiceImpl) UpdateField(ctx context.Context, fieldID uuid.UUID, req *dto.UpdateFieldDefinitionRequest) (*dto.FieldDefinitionResponse, error) {
	def, err := s.fieldDefRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Field definition not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field definition", err.Error())
	}

	if req.FieldName != nil && *req.FieldName != def.FieldName {
		return nil, response.NewAppError(response.ErrCodeImmutableAttribute,
			"fieldName cannot be changed after creation", "")
	}
	if req.FieldType != nil && *req.FieldType != string(def.FieldType) {
		return nil, response.NewAppError(response.ErrCodeImmutableAttribute,
			"fieldType cannot be changed after creation", "")
	}

	info, _ := domain.Describe(def.FieldType)

	if req.PicklistID != nil || len(req.InlineOptions) > 0 {
		if err := s.applyOptionSource(ctx, def, info, req.PicklistID, req.InlineOptions, nil); err != nil {
			return nil, err
		}
	}
	if req.LookupEntityType != nil {
		if !info.RequiresLookupTarget {
			return nil, response.NewValidationError(
				fmt.Sprintf("%s fields do not take a lookup target", def.FieldType), "")
		}
		target := domain.EntityType(*req.LookupEntityType)
		if !domain.IsValidEntityType(target) {
			return nil, response.NewAppError(response.ErrCodeMissingLookupTarget,
				fmt.Sprintf("Unknown lookup entity type: %s", *req.LookupEntityType), "")
		}
		def.LookupEntityType = &target
	}

	if req.DisplayLabel != nil {
		def.DisplayLabel = *req.DisplayLabel
	}
	if req.DefaultValue != nil {
		def.DefaultValue = req.DefaultValue
	}
	if req.HelpText != nil {
		def.HelpText = *req.HelpText
	}
	if req.Section != nil {
		def.Section = *req.Section
	}
	if req.MinValue != nil {
		def.MinValue = req.MinValue
	}
	if req.MaxValue != nil {
		def.MaxValue = req.MaxValue
	}
	if req.IsRequired != nil {
		def.IsRequired = *req.IsRequired
	}
	if req.IsSearchable != nil {
		def.IsSearchable = *req.IsSearchable
	}
	if req.IsVisibleInList != nil {
		def.IsVisibleInList = *req.IsVisibleInList
	}
	if req.SortOrder != nil {
		def.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		def.IsActive = *req.IsActive
	}

	if def.MinValue != nil && def.MaxValue != nil && *def.MinValue > *def.MaxValue {
		return nil, response.NewValidationError("minValue must not exceed maxValue", "")
	}
	if (def.MinValue != nil || def.MaxValue != nil) && info.StorageKind != domain.StorageKindNumber {
		return nil, response.NewValidationError(
			fmt.Sprintf("Numeric range is not applicable to %s fields", def.FieldType), "")
	}

	if err := s.fieldDefRepo.Update(ctx, def); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update field definition", err.Error())
	}
	return toFieldDefinitionResponse(def), nil
}

// DeactivateField hides a field definition from new writes and projections.
// Stored values are kept; deactivating an already inactive field is a no-op.
func (s *fieldDefinitionServiceImpl) DeactivateField(ctx context.Context, fieldID uuid.UUID) error {
	def, err := s.fieldDefRepo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Field definition not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch field definition", err.Error())
	}
	if !def.IsActive {
		return nil
	}
	def.IsActive = false
	if err := s.fieldDefRepo.Update(ctx, def); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to deactivate field definition", err.Error())
	}
	s.logger.Info("Deactivated custom field",
		zap.String("entity_type", string(def.EntityType)),
		zap.String("field_name", def.FieldName),
		actorField(ctx),
	)
	return nil
}

// ListFieldTypes returns the closed field type catalog
func (s *fieldDefinitionServiceImpl) ListFieldTypes() []*dto.FieldTypeInfoResponse {
	types := domain.AllFieldTypes()
	responses := make([]*dto.FieldTypeInfoResponse, len(types))
	for i, ft := range types {
		info, _ := domain.Describe(ft)
		responses[i] = &dto.FieldTypeInfoResponse{
			FieldType:            string(ft),
			StorageKind:          string(info.StorageKind),
			RequiresPicklist:     info.RequiresPicklist,
			RequiresLookupTarget: info.RequiresLookupTarget,
		}
	}
	return responses
}

// SeedDefaults creates the stock field definitions for each portal entity,
// or for a single entity when entityType is non-empty. Definitions referencing
// system picklists resolve them by name, so picklists must be seeded first.
// Existing (entityType, fieldName) pairs are skipped.
func (s *fieldDefinitionServiceImpl) SeedDefaults(ctx context.Context, entityType domain.EntityType) (*dto.SeedResultResponse, error) {
	if entityType != "" && !domain.IsValidEntityType(entityType) {
		return nil, response.NewValidationError(fmt.Sprintf("Unknown entity type: %s", entityType), "")
	}

	result := &dto.SeedResultResponse{}

	for _, template := range defaultFieldDefinitions() {
		if entityType != "" && template.EntityType != entityType {
			continue
		}
		existing, err := s.fieldDefRepo.FindByEntityAndName(ctx, template.EntityType, template.FieldName)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing field", err.Error())
		}
		if existing != nil {
			result.Existing++
			continue
		}

		def := &domain.CustomFieldDefinition{
			BaseModel:       domain.BaseModel{ID: uuid.New()},
			EntityType:      template.EntityType,
			FieldName:       template.FieldName,
			DisplayLabel:    template.DisplayLabel,
			FieldType:       template.FieldType,
			HelpText:        template.HelpText,
			Section:         template.Section,
			MinValue:        template.MinValue,
			MaxValue:        template.MaxValue,
			IsRequired:      template.IsRequired,
			IsSearchable:    template.IsSearchable,
			IsVisibleInList: template.IsVisibleInList,
			IsActive:        true,
			SortOrder:       template.SortOrder,
		}

		if template.PicklistName != "" {
			picklist, err := s.picklistRepo.FindByNameKey(ctx, NameKey(template.PicklistName))
			if err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve picklist", err.Error())
			}
			if picklist == nil {
				return nil, response.NewAppError(response.ErrCodeMissingPicklistReference,
					fmt.Sprintf("System picklist '%s' is not seeded", template.PicklistName), "")
			}
			def.PicklistID = &picklist.ID
		}
		if template.LookupEntityType != "" {
			target := template.LookupEntityType
			def.LookupEntityType = &target
		}

		if err := s.fieldDefRepo.Create(ctx, def); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal,
				fmt.Sprintf("Failed to seed field '%s.%s'", template.EntityType, template.FieldName), err.Error())
		}
		result.Created++
	}

	return result, nil
}

// toFieldDefinitionResponse converts a field definition domain model to its response DTO
func toFieldDefinitionResponse(def *domain.CustomFieldDefinition) *dto.FieldDefinitionResponse {
	info, _ := domain.Describe(def.FieldType)

	resp := &dto.FieldDefinitionResponse{
		FieldID:         def.ID,
		EntityType:      string(def.EntityType),
		FieldName:       def.FieldName,
		DisplayLabel:    def.DisplayLabel,
		FieldType:       string(def.FieldType),
		StorageKind:     string(info.StorageKind),
		PicklistID:      def.PicklistID,
		DefaultValue:    def.DefaultValue,
		HelpText:        def.HelpText,
		Section:         def.Section,
		MinValue:        def.MinValue,
		MaxValue:        def.MaxValue,
		IsRequired:      def.IsRequired,
		IsSearchable:    def.IsSearchable,
		IsVisibleInList: def.IsVisibleInList,
		IsActive:        def.IsActive,
		SortOrder:       def.SortOrder,
		CreatedAt:       def.CreatedAt,
		UpdatedAt:       def.UpdatedAt,
	}
	if options, err := def.DecodeInlineOptions(); err == nil {
		resp.InlineOptions = options
	}
	if def.LookupEntityType != nil {
		target := string(*def.LookupEntityType)
		resp.LookupEntityType = &target
	}
	if def.Picklist != nil {
		resp.Picklist = toPicklistResponse(def.Picklist)
	}
	return resp
}
