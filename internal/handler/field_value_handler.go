package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/dto"
	"portal-metadata-api/internal/response"
	"portal-metadata-api/internal/service"
)

type FieldValueHandler struct {
	valueService      service.ValueService
	projectionService service.ProjectionService
}

func NewFieldValueHandler(valueService service.ValueService, projectionService service.ProjectionService) *FieldValueHandler {
	return &FieldValueHandler{
		valueService:      valueService,
		projectionService: projectionService,
	}
}

// GetValues godoc
// @Summary      Get entity values
// @Description  Returns all stored custom field values of one entity instance, keyed by field name
// @Tags         values
// @Produce      json
// @Param        entityType path string true "Entity type" Enums(opportunity, account, contact, contract_vehicle)
// @Param        entityId path string true "Entity instance ID"
// @Success      200 {object} response.SuccessResponse{data=dto.EntityValuesResponse} "Stored values"
// @Failure      400 {object} response.ErrorResponse "Unknown entity type"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /entities/{entityType}/{entityId}/values [get]
func (h *FieldValueHandler) GetValues(c *gin.Context) {
	entityType := domain.EntityType(c.Param("entityType"))
	entityID := c.Param("entityId")

	values, err := h.valueService.GetValues(c.Request.Context(), entityType, entityID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, values)
}

// SetValue godoc
// @Summary      Set one field value
// @Description  Validates and stores one custom field value. A null value clears the stored value unless the field is required. Writing to a deactivated field succeeds with a warning.
// @Tags         values
// @Accept       json
// @Produce      json
// @Param        entityType path string true "Entity type" Enums(opportunity, account, contact, contract_vehicle)
// @Param        entityId path string true "Entity instance ID"
// @Param        fieldName path string true "Machine field name"
// @Param        request body dto.SetValueRequest true "Value to store"
// @Success      200 {object} response.SuccessResponse{data=dto.SetValueResponse} "Stored value"
// @Failure      400 {object} response.ErrorResponse "Rejected value"
// @Failure      404 {object} response.ErrorResponse "Unknown field"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /entities/{entityType}/{entityId}/values/{fieldName} [put]
func (h *FieldValueHandler) SetValue(c *gin.Context) {
	entityType := domain.EntityType(c.Param("entityType"))
	entityID := c.Param("entityId")
	fieldName := c.Param("fieldName")

	var req dto.SetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.valueService.SetValue(c.Request.Context(), entityType, entityID, fieldName, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}

// GetProjection godoc
// @Summary      Get entity projection
// @Description  Returns the ordered display projection of one entity instance: every active field with its value and human-readable rendering
// @Tags         values
// @Produce      json
// @Param        entityType path string true "Entity type" Enums(opportunity, account, contact, contract_vehicle)
// @Param        entityId path string true "Entity instance ID"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectionResponse} "Projection"
// @Failure      400 {object} response.ErrorResponse "Unknown entity type"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /entities/{entityType}/{entityId}/projection [get]
func (h *FieldValueHandler) GetProjection(c *gin.Context) {
	entityType := domain.EntityType(c.Param("entityType"))
	entityID := c.Param("entityId")

	projection, err := h.projectionService.Project(c.Request.Context(), entityType, entityID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, projection)
}

// DeleteValues godoc
// @Summary      Delete entity values (internal)
// @Description  Removes every stored value of one entity instance. Called by the core portal when the entity is deleted; idempotent.
// @Tags         internal
// @Produce      json
// @Param        entityType path string true "Entity type" Enums(opportunity, account, contact, contract_vehicle)
// @Param        entityId path string true "Entity instance ID"
// @Success      204 "Deleted"
// @Failure      400 {object} response.ErrorResponse "Unknown entity type"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /internal/entities/{entityType}/{entityId}/values [delete]
func (h *FieldValueHandler) DeleteValues(c *gin.Context) {
	entityType := domain.EntityType(c.Param("entityType"))
	entityID := c.Param("entityId")

	if err := h.valueService.DeleteValuesForEntity(c.Request.Context(), entityType, entityID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
