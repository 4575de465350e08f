package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portal-metadata-api/internal/dto"
	"portal-metadata-api/internal/response"
	"portal-metadata-api/internal/service"
)

type PicklistHandler struct {
	picklistService service.PicklistService
}

func NewPicklistHandler(picklistService service.PicklistService) *PicklistHandler {
	return &PicklistHandler{
		picklistService: picklistService,
	}
}

// ListPicklists godoc
// @Summary      List picklists
// @Description  Returns all picklists with their values in display order
// @Tags         picklists
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.PicklistResponse} "Picklists"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /picklists [get]
func (h *PicklistHandler) ListPicklists(c *gin.Context) {
	picklists, err := h.picklistService.ListPicklists(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, picklists)
}

// GetPicklist godoc
// @Summary      Get a picklist
// @Description  Returns one picklist with its values in display order
// @Tags         picklists
// @Produce      json
// @Param        picklistId path string true "Picklist ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.PicklistResponse} "Picklist"
// @Failure      400 {object} response.ErrorResponse "Invalid picklist ID"
// @Failure      404 {object} response.ErrorResponse "Picklist not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /picklists/{picklistId} [get]
func (h *PicklistHandler) GetPicklist(c *gin.Context) {
	picklistID, err := uuid.Parse(c.Param("picklistId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid picklist ID")
		return
	}

	picklist, err := h.picklistService.GetPicklist(c.Request.Context(), picklistID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, picklist)
}

// CreatePicklist godoc
// @Summary      Create a picklist
// @Description  Creates a new picklist, optionally with initial values. Names are unique case-insensitively.
// @Tags         picklists
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePicklistRequest true "Picklist to create"
// @Success      201 {object} response.SuccessResponse{data=dto.PicklistResponse} "Created picklist"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      409 {object} response.ErrorResponse "Duplicate name or value"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /picklists [post]
func (h *PicklistHandler) CreatePicklist(c *gin.Context) {
	var req dto.CreatePicklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	picklist, err := h.picklistService.CreatePicklist(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, picklist)
}

// AddPicklistValue godoc
// @Summary      Add a picklist value
// @Description  Appends a new value to a picklist. Value keys are unique within a picklist.
// @Tags         picklists
// @Accept       json
// @Produce      json
// @Param        picklistId path string true "Picklist ID (UUID)"
// @Param        request body dto.AddPicklistValueRequest true "Value to add"
// @Success      201 {object} response.SuccessResponse{data=dto.PicklistValueResponse} "Created value"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Picklist not found"
// @Failure      409 {object} response.ErrorResponse "Duplicate value"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /picklists/{picklistId}/values [post]
func (h *PicklistHandler) AddPicklistValue(c *gin.Context) {
	picklistID, err := uuid.Parse(c.Param("picklistId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid picklist ID")
		return
	}

	var req dto.AddPicklistValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	value, err := h.picklistService.AddValue(c.Request.Context(), picklistID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, value)
}

// UpdatePicklistValue godoc
// @Summary      Update a picklist value
// @Description  Relabels or activates/deactivates a picklist value. The value key itself never changes.
// @Tags         picklists
// @Accept       json
// @Produce      json
// @Param        picklistId path string true "Picklist ID (UUID)"
// @Param        valueId path string true "Value ID (UUID)"
// @Param        request body dto.UpdatePicklistValueRequest true "Changes to apply"
// @Success      200 {object} response.SuccessResponse{data=dto.PicklistValueResponse} "Updated value"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      404 {object} response.ErrorResponse "Value not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /picklists/{picklistId}/values/{valueId} [patch]
func (h *PicklistHandler) UpdatePicklistValue(c *gin.Context) {
	picklistID, err := uuid.Parse(c.Param("picklistId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid picklist ID")
		return
	}
	valueID, err := uuid.Parse(c.Param("valueId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid value ID")
		return
	}

	var req dto.UpdatePicklistValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	value, err := h.picklistService.UpdateValue(c.Request.Context(), picklistID, valueID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, value)
}

// ReorderPicklist godoc
// @Summary      Reorder picklist values
// @Description  Reassigns the display order of a picklist's values. The submitted id list must be a permutation of the current value set.
// @Tags         picklists
// @Accept       json
// @Produce      json
// @Param        picklistId path string true "Picklist ID (UUID)"
// @Param        request body dto.ReorderPicklistRequest true "Ordered value ids"
// @Success      200 {object} response.SuccessResponse{data=dto.PicklistResponse} "Reordered picklist"
// @Failure      400 {object} response.ErrorResponse "Invalid id set"
// @Failure      404 {object} response.ErrorResponse "Picklist not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /picklists/{picklistId}/reorder [put]
func (h *PicklistHandler) ReorderPicklist(c *gin.Context) {
	picklistID, err := uuid.Parse(c.Param("picklistId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid picklist ID")
		return
	}

	var req dto.ReorderPicklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	picklist, err := h.picklistService.Reorder(c.Request.Context(), picklistID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, picklist)
}

// SeedPicklists godoc
// @Summary      Seed system picklists
// @Description  Creates the stock system picklists. Safe to call repeatedly; existing picklists are left untouched.
// @Tags         picklists
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.SeedResultResponse} "Seed result"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /picklists/seed [post]
func (h *PicklistHandler) SeedPicklists(c *gin.Context) {
	result, err := h.picklistService.SeedDefaults(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, result)
}
