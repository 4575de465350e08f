package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/dto"
	"portal-metadata-api/internal/response"
	"portal-metadata-api/internal/service"
)

type FieldDefinitionHandler struct {
	fieldDefService service.FieldDefinitionService
}

func NewFieldDefinitionHandler(fieldDefService service.FieldDefinitionService) *FieldDefinitionHandler {
	return &FieldDefinitionHandler{
		fieldDefService: fieldDefService,
	}
}

// ListFieldTypes godoc
// @Summary      List field types
// @Description  Returns the closed catalog of supported field types and their storage kinds
// @Tags         fields
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldTypeInfoResponse} "Field types"
// @Router       /field-types [get]
func (h *FieldDefinitionHandler) ListFieldTypes(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, h.fieldDefService.ListFieldTypes())
}

// ListFields godoc
// @Summary      List field definitions
// @Description  Returns the custom field definitions of an entity type in display order
// @Tags         fields
// @Produce      json
// @Param        entityType path string true "Entity type" Enums(opportunity, account, contact, contract_vehicle)
// @Param        includeInactive query bool false "Include deactivated definitions"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldDefinitionResponse} "Field definitions"
// @Failure      400 {object} response.ErrorResponse "Unknown entity type"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /entities/{entityType}/fields [get]
func (h *FieldDefinitionHandler) ListFields(c *gin.Context) {
	entityType := domain.EntityType(c.Param("entityType"))
	includeInactive := c.Query("includeInactive") == "true"

	fields, err := h.fieldDefService.ListFields(c.Request.Context(), entityType, includeInactive)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, fields)
}

// CreateField godoc
// @Summary      Define a custom field
// @Description  Creates a custom field definition on an entity type. Picklist fields need an option source; lookup fields need a target entity type.
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        entityType path string true "Entity type" Enums(opportunity, account, contact, contract_vehicle)
// @Param        request body dto.CreateFieldDefinitionRequest true "Field definition"
// @Success      201 {object} response.SuccessResponse{data=dto.FieldDefinitionResponse} "Created definition"
// @Failure      400 {object} response.ErrorResponse "Invalid definition"
// @Failure      401 {object} response.ErrorResponse "Missing auth context"
// @Failure      409 {object} response.ErrorResponse "Field name already taken"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /entities/{entityType}/fields [post]
func (h *FieldDefinitionHandler) CreateField(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	entityType := domain.EntityType(c.Param("entityType"))

	var req dto.CreateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	ctx := service.WithActor(c.Request.Context(), auth.UserID)
	field, err := h.fieldDefService.DefineField(ctx, entityType, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, field)
}

// GetField godoc
// @Summary      Get a field definition
// @Description  Returns one field definition, including its picklist when it has one
// @Tags         fields
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldDefinitionResponse} "Field definition"
// @Failure      400 {object} response.ErrorResponse "Invalid field ID"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /fields/{fieldId} [get]
func (h *FieldDefinitionHandler) GetField(c *gin.Context) {
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid field ID")
		return
	}

	field, err := h.fieldDefService.GetField(c.Request.Context(), fieldID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, field)
}

// UpdateField godoc
// @Summary      Update a field definition
// @Description  Modifies the mutable attributes of a field definition. Entity type, field name, and field type are immutable.
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Param        request body dto.UpdateFieldDefinitionRequest true "Changes to apply"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldDefinitionResponse} "Updated definition"
// @Failure      400 {object} response.ErrorResponse "Invalid change or immutable attribute"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /fields/{fieldId} [patch]
func (h *FieldDefinitionHandler) UpdateField(c *gin.Context) {
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid field ID")
		return
	}

	var req dto.UpdateFieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.fieldDefService.UpdateField(c.Request.Context(), fieldID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, field)
}

// DeactivateField godoc
// @Summary      Deactivate a field definition
// @Description  Hides a field from new writes and projections. Stored values are kept and the field name stays reserved.
// @Tags         fields
// @Produce      json
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      204 "Deactivated"
// @Failure      400 {object} response.ErrorResponse "Invalid field ID"
// @Failure      401 {object} response.ErrorResponse "Missing auth context"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /fields/{fieldId} [delete]
func (h *FieldDefinitionHandler) DeactivateField(c *gin.Context) {
	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid field ID")
		return
	}

	ctx := service.WithActor(c.Request.Context(), auth.UserID)
	if err := h.fieldDefService.DeactivateField(ctx, fieldID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SeedFields godoc
// @Summary      Seed stock field definitions
// @Description  Creates the stock field definitions for each entity type, or for a single entity when entityType is given. Requires system picklists to be seeded first. Safe to call repeatedly.
// @Tags         fields
// @Produce      json
// @Param        entityType query string false "Limit seeding to one entity type"
// @Success      200 {object} response.SuccessResponse{data=dto.SeedResultResponse} "Seed result"
// @Failure      400 {object} response.ErrorResponse "Unknown entity type or system picklists not seeded"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /fields/seed [post]
func (h *FieldDefinitionHandler) SeedFields(c *gin.Context) {
	entityType := domain.EntityType(c.Query("entityType"))
	result, err := h.fieldDefService.SeedDefaults(c.Request.Context(), entityType)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}
