package job

import (
	"context"

	"go.uber.org/zap"

	"portal-metadata-api/internal/client"
	"portal-metadata-api/internal/metrics"
	"portal-metadata-api/internal/repository"
)

// OrphanSweepJob removes custom field values whose owning entity no longer
// exists in the core portal. The deletion cascade normally runs when the
// portal deletes an entity; this job catches the cases where that call was
// lost.
type OrphanSweepJob struct {
	valueRepo    repository.FieldValueRepository
	portalClient client.PortalClient
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewOrphanSweepJob creates a new OrphanSweepJob instance
func NewOrphanSweepJob(
	valueRepo repository.FieldValueRepository,
	portalClient client.PortalClient,
	logger *zap.Logger,
	m *metrics.Metrics,
) *OrphanSweepJob {
	return &OrphanSweepJob{
		valueRepo:    valueRepo,
		portalClient: portalClient,
		logger:       logger,
		metrics:      m,
	}
}

// Run executes the orphan sweep. It lists every entity instance holding
// values, asks the portal whether each still exists, and deletes the values
// of the ones that do not. Portal errors skip the owner rather than deleting;
// only a confirmed "does not exist" triggers removal.
func (j *OrphanSweepJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting orphan sweep for custom field values")

	owners, err := j.valueRepo.DistinctOwners(ctx)
	if err != nil {
		j.logger.Error("Failed to list value owners", zap.Error(err))
		return
	}
	if len(owners) == 0 {
		j.logger.Info("No stored values to sweep")
		return
	}

	sweptCount := 0
	skippedCount := 0

	for _, owner := range owners {
		exists, err := j.portalClient.EntityExists(ctx, owner.EntityType, owner.EntityID)
		if err != nil {
			j.logger.Warn("Skipping owner, existence check failed",
				zap.String("entity_type", string(owner.EntityType)),
				zap.String("entity_id", owner.EntityID),
				zap.Error(err),
			)
			skippedCount++
			continue
		}
		if exists {
			continue
		}

		if err := j.valueRepo.DeleteForEntity(ctx, owner.EntityType, owner.EntityID); err != nil {
			j.logger.Error("Failed to delete orphaned values",
				zap.String("entity_type", string(owner.EntityType)),
				zap.String("entity_id", owner.EntityID),
				zap.Error(err),
			)
			continue
		}

		sweptCount++
		j.logger.Debug("Deleted orphaned values",
			zap.String("entity_type", string(owner.EntityType)),
			zap.String("entity_id", owner.EntityID),
		)
	}

	if j.metrics != nil && sweptCount > 0 {
		j.metrics.RecordOrphanedValuesSwept(sweptCount)
	}

	j.logger.Info("Orphan sweep completed",
		zap.Int("owners_checked", len(owners)),
		zap.Int("swept", sweptCount),
		zap.Int("skipped", skippedCount),
	)
}
