package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/metrics"
)

// PortalClient talks to the core portal API. The metadata service uses it for
// two things: validating bearer tokens on admin routes, and checking whether
// an entity instance exists when a Lookup value is written or the orphan
// sweep runs.
type PortalClient interface {
	ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error)
	EntityExists(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error)
}

// portalClient implements PortalClient against the portal's internal REST API
type portalClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewPortalClient creates a new core portal API client
func NewPortalClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) PortalClient {
	return &portalClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

type validateTokenResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"userId"`
}

// ValidateToken asks the portal auth endpoint whether the token is valid and
// returns the user it belongs to. Revoked tokens fail here even when their
// signature still verifies locally.
func (c *portalClient) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	url := fmt.Sprintf("%s/api/portal/internal/auth/validate", c.baseURL)

	startTime := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, http.MethodPost, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Token validation request failed",
			zap.Error(err),
			zap.Duration("duration", duration),
		)
		return uuid.Nil, fmt.Errorf("token validation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return uuid.Nil, fmt.Errorf("token validation returned status %d", resp.StatusCode)
	}

	var body validateTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode token validation response: %w", err)
	}
	if !body.Valid {
		return uuid.Nil, fmt.Errorf("token rejected by portal auth")
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token validation response: %w", err)
	}
	return userID, nil
}

type entityExistsResponse struct {
	Exists bool `json:"exists"`
}

// EntityExists checks whether an entity instance exists in the core portal.
// A 404 from the portal means "does not exist" rather than an error, so
// lookup validation can distinguish dangling references from outages.
func (c *portalClient) EntityExists(ctx context.Context, entityType domain.EntityType, entityID string) (bool, error) {
	url := fmt.Sprintf("%s/api/portal/internal/%s/%s/exists", c.baseURL, entityType.Collection(), entityID)

	startTime := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, http.MethodGet, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Entity existence check failed",
			zap.Error(err),
			zap.String("entity_type", string(entityType)),
			zap.String("entity_id", entityID),
			zap.Duration("duration", duration),
		)
		return false, fmt.Errorf("entity existence check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("entity existence check returned status %d", resp.StatusCode)
	}

	var body entityExistsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode existence response: %w", err)
	}
	return body.Exists, nil
}
