package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/dto"
	"portal-metadata-api/internal/metrics"
	"portal-metadata-api/internal/repository"
	"portal-metadata-api/internal/response"
)

const (
	picklistCacheTTL     = 5 * time.Minute
	picklistCacheKeyFmt  = "metadata:picklist:%s"
	picklistListCacheKey = "metadata:picklists"
)

// PicklistService defines the interface for picklist business logic
type PicklistService interface {
	CreatePicklist(ctx context.Context, req *dto.CreatePicklistRequest) (*dto.PicklistResponse, error)
	GetPicklist(ctx context.Context, picklistID uuid.UUID) (*dto.PicklistResponse, error)
	ListPicklists(ctx context.Context) ([]*dto.PicklistResponse, error)
	AddValue(ctx context.Context, picklistID uuid.UUID, req *dto.AddPicklistValueRequest) (*dto.PicklistValueResponse, error)
	UpdateValue(ctx context.Context, picklistID, valueID uuid.UUID, req *dto.UpdatePicklistValueRequest) (*dto.PicklistValueResponse, error)
	Reorder(ctx context.Context, picklistID uuid.UUID, req *dto.ReorderPicklistRequest) (*dto.PicklistResponse, error)
	SeedDefaults(ctx context.Context) (*dto.SeedResultResponse, error)
}

// picklistServiceImpl is the implementation of PicklistService
type picklistServiceImpl struct {
	picklistRepo repository.PicklistRepository
	cache        *redis.Client
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewPicklistService creates a new instance of PicklistService. The cache
// client may be nil, in which case all reads go straight to the database.
func NewPicklistService(picklistRepo repository.PicklistRepository, cache *redis.Client, logger *zap.Logger, m *metrics.Metrics) PicklistService {
	return &picklistServiceImpl{
		picklistRepo: picklistRepo,
		cache:        cache,
		logger:       logger,
		metrics:      m,
	}
}

// NameKey normalizes a picklist name for case-insensitive uniqueness
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreatePicklist creates a new picklist with optional initial values
func (s *picklistServiceImpl) CreatePicklist(ctx context.Context, req *dto.CreatePicklistRequest) (*dto.PicklistResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Picklist name must not be blank", "")
	}

	nameKey := NameKey(name)
	existing, err := s.picklistRepo.FindByNameKey(ctx, nameKey)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check picklist name", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeDuplicateName,
			fmt.Sprintf("A picklist named '%s' already exists", existing.Name), "")
	}

	// Reject duplicate value keys within the submitted list before touching
	// the database, so the error names the offending key.
	seen := make(map[string]bool, len(req.Values))
	for _, v := range req.Values {
		if seen[v.Value] {
			return nil, response.NewAppError(response.ErrCodeDuplicateValue,
				fmt.Sprintf("Value '%s' appears more than once", v.Value), "")
		}
		seen[v.Value] = true
	}

	picklist := &domain.PicklistDefinition{
		BaseModel:   domain.BaseModel{ID: uuid.New()},
		Name:        name,
		NameKey:     nameKey,
		Description: req.Description,
		IsSystem:    false,
	}
	for i, v := range req.Values {
		label := v.Label
		if label == "" {
			label = v.Value
		}
		picklist.Values = append(picklist.Values, domain.PicklistValue{
			BaseModel:  domain.BaseModel{ID: uuid.New()},
			PicklistID: picklist.ID,
			Value:      v.Value,
			Label:      label,
			SortOrder:  i,
			IsActive:   true,
		})
	}

	if err := s.picklistRepo.Create(ctx, picklist); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create picklist", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPicklistCreated()
	}
	s.invalidateCache(ctx, picklist.ID)

	return toPicklistResponse(picklist), nil
}

// GetPicklist retrieves a picklist by id, reading through the cache
func (s *picklistServiceImpl) GetPicklist(ctx context.Context, picklistID uuid.UUID) (*dto.PicklistResponse, error) {
	cacheKey := fmt.Sprintf(picklistCacheKeyFmt, picklistID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.PicklistResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Picklist cache read failed", zap.Error(err))
		}
	}

	picklist, err := s.picklistRepo.FindByID(ctx, picklistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Picklist not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch picklist", err.Error())
	}

	resp := toPicklistResponse(picklist)
	s.writeCache(ctx, cacheKey, resp)
	return resp, nil
}

// ListPicklists returns all picklists ordered by name
func (s *picklistServiceImpl) ListPicklists(ctx context.Context) ([]*dto.PicklistResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, picklistListCacheKey).Result(); err == nil {
			var resp []*dto.PicklistResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Picklist list cache read failed", zap.Error(err))
		}
	}

	picklists, err := s.picklistRepo.List(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list picklists", err.Error())
	}

	responses := make([]*dto.PicklistResponse, len(picklists))
	for i, p := range picklists {
		responses[i] = toPicklistResponse(p)
	}
	s.writeCache(ctx, picklistListCacheKey, responses)
	return responses, nil
}

// AddValue appends a new value to an existing picklist
func (s *picklistServiceImpl) AddValue(ctx context.Context, picklistID uuid.UUID, req *dto.AddPicklistValueRequest) (*dto.PicklistValueResponse, error) {
	picklist, err := s.picklistRepo.FindByID(ctx, picklistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Picklist not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch picklist", err.Error())
	}

	existing, err := s.picklistRepo.FindValueByKey(ctx, picklistID, req.Value)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check value key", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeDuplicateValue,
			fmt.Sprintf("Value '%s' already exists in picklist '%s'", req.Value, picklist.Name), "")
	}

	label := req.Label
	if label == "" {
		label = req.Value
	}
	value := &domain.PicklistValue{
		BaseModel:  domain.BaseModel{ID: uuid.New()},
		PicklistID: picklistID,
		Value:      req.Value,
		Label:      label,
		SortOrder:  len(picklist.Values),
		IsActive:   true,
	}
	if err := s.picklistRepo.AddValue(ctx, value); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add picklist value", err.Error())
	}

	s.invalidateCache(ctx, picklistID)

	resp := toPicklistValueResponse(value)
	return &resp, nil
}

// UpdateValue relabels, repositions, or activates/deactivates a picklist
// value. The value key is never changed; stored entity records reference it.
func (s *picklistServiceImpl) UpdateValue(ctx context.Context, picklistID, valueID uuid.UUID, req *dto.UpdatePicklistValueRequest) (*dto.PicklistValueResponse, error) {
	value, err := s.picklistRepo.FindValueByID(ctx, valueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Picklist value not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch picklist value", err.Error())
	}
	if value.PicklistID != picklistID {
		return nil, response.NewNotFoundError("Picklist value not found", "value belongs to a different picklist")
	}

	if req.Label != nil {
		value.Label = *req.Label
	}
	if req.SortOrder != nil {
		value.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		value.IsActive = *req.IsActive
	}

	if err := s.picklistRepo.UpdateValue(ctx, value); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update picklist value", err.Error())
	}

	s.invalidateCache(ctx, picklistID)

	resp := toPicklistValueResponse(value)
	return &resp, nil
}

// Reorder reassigns the display order of a picklist's values
func (s *picklistServiceImpl) Reorder(ctx context.Context, picklistID uuid.UUID, req *dto.ReorderPicklistRequest) (*dto.PicklistResponse, error) {
	if err := s.picklistRepo.Reorder(ctx, picklistID, req.OrderedValueIDs); err != nil {
		if errors.Is(err, repository.ErrValueSetMismatch) {
			return nil, response.NewAppError(response.ErrCodeInvalidSet,
				"Ordered value ids must be a permutation of the picklist's current values", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reorder picklist", err.Error())
	}

	s.invalidateCache(ctx, picklistID)

	picklist, err := s.picklistRepo.FindByID(ctx, picklistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Picklist not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch picklist", err.Error())
	}
	return toPicklistResponse(picklist), nil
}

// SeedDefaults creates the system picklists that ship with the portal.
// Seeding is idempotent: picklists whose name key already exists are left
// untouched, even when their value sets have diverged from the template.
func (s *picklistServiceImpl) SeedDefaults(ctx context.Context) (*dto.SeedResultResponse, error) {
	result := &dto.SeedResultResponse{}

	for _, template := range defaultPicklists() {
		existing, err := s.picklistRepo.FindByNameKey(ctx, NameKey(template.Name))
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing picklist", err.Error())
		}
		if existing != nil {
			result.Existing++
			continue
		}

		picklist := &domain.PicklistDefinition{
			BaseModel:   domain.BaseModel{ID: uuid.New()},
			Name:        template.Name,
			NameKey:     NameKey(template.Name),
			Description: template.Description,
			IsSystem:    true,
		}
		for i, v := range template.Values {
			picklist.Values = append(picklist.Values, domain.PicklistValue{
				BaseModel:  domain.BaseModel{ID: uuid.New()},
				PicklistID: picklist.ID,
				Value:      v.Value,
				Label:      v.Label,
				SortOrder:  i,
				IsActive:   true,
			})
		}
		if err := s.picklistRepo.Create(ctx, picklist); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal,
				fmt.Sprintf("Failed to seed picklist '%s'", template.Name), err.Error())
		}
		s.logger.Info("Seeded system picklist",
			zap.String("name", template.Name),
			zap.Int("values", len(template.Values)),
		)
		result.Created++
	}

	if result.Created > 0 {
		s.invalidateListCache(ctx)
	}
	return result, nil
}

func (s *picklistServiceImpl) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, encoded, picklistCacheTTL).Err(); err != nil {
		s.logger.Warn("Picklist cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *picklistServiceImpl) invalidateCache(ctx context.Context, picklistID uuid.UUID) {
	if s.cache == nil {
		return
	}
	keys := []string{fmt.Sprintf(picklistCacheKeyFmt, picklistID), picklistListCacheKey}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("Picklist cache invalidation failed", zap.Error(err))
	}
}

func (s *picklistServiceImpl) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, picklistListCacheKey).Err(); err != nil {
		s.logger.Warn("Picklist cache invalidation failed", zap.Error(err))
	}
}

// toPicklistResponse converts a picklist domain model to its response DTO
func toPicklistResponse(p *domain.PicklistDefinition) *dto.PicklistResponse {
	values := make([]dto.PicklistValueResponse, len(p.Values))
	for i := range p.Values {
		values[i] = toPicklistValueResponse(&p.Values[i])
	}
	return &dto.PicklistResponse{
		PicklistID:  p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsSystem:    p.IsSystem,
		Values:      values,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// toPicklistValueResponse converts a picklist value domain model to its response DTO
func toPicklistValueResponse(v *domain.PicklistValue) dto.PicklistValueResponse {
	return dto.PicklistValueResponse{
		ValueID:   v.ID,
		Value:     v.Value,
		Label:     v.Label,
		SortOrder: v.SortOrder,
		IsActive:  v.IsActive,
	}
}
