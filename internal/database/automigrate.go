package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portal-metadata-api/internal/domain"
)

// modelInfo holds a domain model together with its table name for logging
type modelInfo struct {
	model     interface{}
	tableName string
}

func allModels() []modelInfo {
	return []modelInfo{
		{&domain.PicklistDefinition{}, "picklist_definitions"},
		{&domain.PicklistValue{}, "picklist_values"},
		{&domain.CustomFieldDefinition{}, "custom_field_definitions"},
		{&domain.CustomFieldValue{}, "custom_field_values"},
	}
}

// AutoMigrate runs GORM auto-migration for all domain models. The unique
// indexes it creates are what make duplicate detection authoritative at the
// storage layer: picklist name keys, (picklist, value) pairs, (entity type,
// field name) pairs, and the value upsert key.
func AutoMigrate(db *gorm.DB) error {
	infos := allModels()
	models := make([]interface{}, 0, len(infos))
	for _, m := range infos {
		models = append(models, m.model)
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}

// SafeAutoMigrate runs auto-migration model by model, logging whether each
// table already existed. GORM only adds missing columns and indexes on
// existing tables, so this is safe for both fresh and upgraded databases.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range allModels() {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Info("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	return nil
}
