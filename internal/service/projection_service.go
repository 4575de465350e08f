package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/dto"
	"portal-metadata-api/internal/repository"
	"portal-metadata-api/internal/response"
)

const (
	dateDisplayLayout     = "Jan 2, 2006"
	dateTimeDisplayLayout = "Jan 2, 2006 15:04 MST"
)

// ProjectionService assembles the display projection of an entity instance:
// its active field definitions in display order, each paired with the stored
// value and a human-readable rendering of it.
type ProjectionService interface {
	Project(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.ProjectionResponse, error)
}

// projectionServiceImpl is the implementation of ProjectionService
type projectionServiceImpl struct {
	fieldDefRepo repository.FieldDefinitionRepository
	valueRepo    repository.FieldValueRepository
	logger       *zap.Logger
}

// NewProjectionService creates a new instance of ProjectionService
func NewProjectionService(
	fieldDefRepo repository.FieldDefinitionRepository,
	valueRepo repository.FieldValueRepository,
	logger *zap.Logger,
) ProjectionService {
	return &projectionServiceImpl{
		fieldDefRepo: fieldDefRepo,
		valueRepo:    valueRepo,
		logger:       logger,
	}
}

// Project builds the ordered projection of one entity instance. Only active
// definitions appear; fields without a stored value render their default
// value's text when one is configured, and blank otherwise.
func (s *projectionServiceImpl) Project(ctx context.Context, entityType domain.EntityType, entityID string) (*dto.ProjectionResponse, error) {
	if !domain.IsValidEntityType(entityType) {
		return nil, response.NewValidationError(fmt.Sprintf("Unknown entity type: %s", entityType), "")
	}

	defs, err := s.fieldDefRepo.ListForEntity(ctx, entityType, false)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list field definitions", err.Error())
	}

	rows, err := s.valueRepo.FindByOwner(ctx, entityType, entityID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch values", err.Error())
	}
	rowsByDef := make(map[uuid.UUID]*domain.CustomFieldValue, len(rows))
	for _, row := range rows {
		rowsByDef[row.FieldDefinitionID] = row
	}

	projection := &dto.ProjectionResponse{
		EntityType: string(entityType),
		EntityID:   entityID,
		Rows:       make([]dto.ProjectionRowResponse, 0, len(defs)),
	}

	for _, def := range defs {
		projRow := dto.ProjectionRowResponse{
			FieldID:      def.ID,
			FieldName:    def.FieldName,
			DisplayLabel: def.DisplayLabel,
			FieldType:    string(def.FieldType),
			Section:      def.Section,
			SortOrder:    def.SortOrder,
		}

		if row, ok := rowsByDef[def.ID]; ok {
			typed, err := row.FromRow()
			if err != nil {
				s.logger.Warn("Skipping unreadable value in projection",
					zap.String("field_name", def.FieldName),
					zap.Error(err),
				)
			} else {
				projRow.Value = presentValue(def, typed)
				projRow.DisplayString = s.renderDisplay(def, typed)
			}
		} else if def.DefaultValue != nil {
			projRow.DisplayString = *def.DefaultValue
		}

		projection.Rows = append(projection.Rows, projRow)
	}

	return projection, nil
}

// renderDisplay formats a typed value for human consumption
func (s *projectionServiceImpl) renderDisplay(def *domain.CustomFieldDefinition, v domain.TypedValue) string {
	switch def.FieldType {
	case domain.FieldTypeCurrency:
		return formatCurrency(v.Num)
	case domain.FieldTypePercent:
		return formatNumber(v.Num) + "%"
	case domain.FieldTypeNumber:
		return formatNumber(v.Num)
	case domain.FieldTypeCheckbox:
		if v.Bool {
			return "Yes"
		}
		return "No"
	case domain.FieldTypeDate:
		return v.Time.Format(dateDisplayLayout)
	case domain.FieldTypeDateTime:
		return v.Time.Format(dateTimeDisplayLayout)
	case domain.FieldTypePicklist:
		return s.optionLabel(def, v.Str)
	case domain.FieldTypeMultiPicklist:
		labels := make([]string, len(v.Set))
		for i, key := range v.Set {
			labels[i] = s.optionLabel(def, key)
		}
		return strings.Join(labels, ", ")
	default:
		// text, textarea, url, email, phone, lookup
		if v.Kind == domain.StorageKindReference {
			return v.Ref
		}
		return v.Str
	}
}

// optionLabel resolves a stored option key to its display label. Inline
// options have no separate label; unknown keys fall back to the raw key so
// stale history still renders.
func (s *projectionServiceImpl) optionLabel(def *domain.CustomFieldDefinition, key string) string {
	if def.Picklist != nil {
		if label, ok := def.Picklist.LabelFor(key); ok {
			return label
		}
	}
	return key
}

// formatCurrency renders a number as a dollar amount with thousands
// separators, e.g. 1234.5 -> "$1,234.50"
func formatCurrency(n float64) string {
	negative := n < 0
	n = math.Abs(n)

	whole := int64(n)
	cents := int64(math.Round((n - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	formatted := fmt.Sprintf("$%s.%02d", groupThousands(whole), cents)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// formatNumber renders a number without trailing zeros
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// groupThousands inserts comma separators into a non-negative integer
func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
