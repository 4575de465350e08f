package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portal-metadata-api/internal/domain"
)

// mockMetricsRecorder is a mock implementation of MetricsRecorder for testing
type mockMetricsRecorder struct {
	queries   []queryRecord
	dbStats   []sql.DBStats
	statsCall int
}

type queryRecord struct {
	operation string
	table     string
	duration  time.Duration
	err       error
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.queries = append(m.queries, queryRecord{
		operation: operation,
		table:     table,
		duration:  duration,
		err:       err,
	})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	if dbStats, ok := stats.(sql.DBStats); ok {
		m.dbStats = append(m.dbStats, dbStats)
		m.statsCall++
	}
}

func setupCallbackTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(&domain.PicklistDefinition{}, &domain.PicklistValue{})
	require.NoError(t, err, "Failed to migrate test models")

	return db
}

func newCallbackPicklist(name string) *domain.PicklistDefinition {
	return &domain.PicklistDefinition{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		NameKey:   name,
	}
}

func TestRegisterMetricsCallbacks_Query(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	err := db.Create(newCallbackPicklist("contract type")).Error
	require.NoError(t, err)

	recorder.queries = nil

	var result domain.PicklistDefinition
	err = db.First(&result).Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")

	query := recorder.queries[0]
	assert.Equal(t, "select", query.operation)
	assert.Equal(t, "picklist_definitions", query.table)
	assert.Greater(t, query.duration, time.Duration(0))
	assert.NoError(t, query.err)
}

func TestRegisterMetricsCallbacks_Create(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	err := db.Create(newCallbackPicklist("opportunity stage")).Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")

	query := recorder.queries[0]
	assert.Equal(t, "insert", query.operation)
	assert.Equal(t, "picklist_definitions", query.table)
	assert.NoError(t, query.err)
}

func TestRegisterMetricsCallbacks_UpdateAndDelete(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	picklist := newCallbackPicklist("naics code")
	err := db.Create(picklist).Error
	require.NoError(t, err)

	recorder.queries = nil

	err = db.Model(picklist).Update("description", "updated").Error
	require.NoError(t, err)

	err = db.Delete(picklist).Error
	require.NoError(t, err)

	require.Len(t, recorder.queries, 2, "Expected two queries to be recorded")
	assert.Equal(t, "update", recorder.queries[0].operation)
	assert.Equal(t, "delete", recorder.queries[1].operation)
}

func TestRegisterMetricsCallbacks_QueryError(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	var result domain.PicklistDefinition
	err := db.First(&result, "id = ?", uuid.New()).Error
	require.Error(t, err, "Expected query to fail")

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err, "Query should have error")
}

func TestRegisterMetricsCallbacks_CreateError(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	err := db.Create(newCallbackPicklist("set aside")).Error
	require.NoError(t, err)

	recorder.queries = nil

	// Same name key trips the unique index
	err = db.Create(newCallbackPicklist("set aside")).Error
	require.Error(t, err, "Expected create to fail with duplicate name key")

	require.Len(t, recorder.queries, 1, "Expected one query to be recorded")
	assert.Equal(t, "insert", recorder.queries[0].operation)
	assert.Error(t, recorder.queries[0].err)
}

func TestRegisterMetricsCallbacks_Transaction(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newCallbackPicklist("contract type")).Error; err != nil {
			return err
		}
		return tx.Create(newCallbackPicklist("opportunity stage")).Error
	})
	require.NoError(t, err)

	insertCount := 0
	for _, query := range recorder.queries {
		if query.operation == "insert" {
			insertCount++
		}
	}
	assert.GreaterOrEqual(t, insertCount, 2, "Expected at least two insert operations")
}

func TestRegisterMetricsCallbacks_TransactionRollback(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	RegisterMetricsCallbacks(db, recorder)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newCallbackPicklist("contract type")).Error; err != nil {
			return err
		}
		return errors.New("forced rollback")
	})
	require.Error(t, err, "Expected transaction to fail")

	// The insert is still timed even though the transaction rolled back
	assert.GreaterOrEqual(t, len(recorder.queries), 1, "Expected at least one query to be recorded")
}

func TestStartDBStatsCollector_Shutdown(t *testing.T) {
	db := setupCallbackTestDB(t)
	recorder := &mockMetricsRecorder{}

	done := StartDBStatsCollector(db, recorder)

	time.Sleep(50 * time.Millisecond)
	close(done)
	time.Sleep(50 * time.Millisecond)

	// Test passes if no panic or deadlock occurs
}
