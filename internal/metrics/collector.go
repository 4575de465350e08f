package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(60 * time.Second),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		// collect once immediately, then on the ticker
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var defCount int64
	if err := c.db.WithContext(ctx).Table("custom_field_definitions").Count(&defCount).Error; err != nil {
		c.logger.Error("Failed to count field definitions", zap.Error(err))
	} else {
		c.metrics.SetFieldDefinitionsTotal(defCount)
	}

	var picklistCount int64
	if err := c.db.WithContext(ctx).Table("picklist_definitions").Count(&picklistCount).Error; err != nil {
		c.logger.Error("Failed to count picklists", zap.Error(err))
	} else {
		c.metrics.SetPicklistsTotal(picklistCount)
	}

	var valueCount int64
	if err := c.db.WithContext(ctx).Table("custom_field_values").Count(&valueCount).Error; err != nil {
		c.logger.Error("Failed to count field values", zap.Error(err))
	} else {
		c.metrics.SetFieldValuesTotal(valueCount)
	}
}
