package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Metric recording must never take down a request path: errors and panics are
// logged and swallowed.
func TestMetricOperationsDoNotPanic(t *testing.T) {
	tests := []struct {
		name      string
		operation func(*Metrics)
	}{
		{
			name: "RecordHTTPRequest",
			operation: func(m *Metrics) {
				m.RecordHTTPRequest("GET", "/test", 200, time.Second)
			},
		},
		{
			name: "RecordDBQuery",
			operation: func(m *Metrics) {
				m.RecordDBQuery("select", "custom_field_values", time.Millisecond, nil)
			},
		},
		{
			name: "RecordDBQuery with error",
			operation: func(m *Metrics) {
				m.RecordDBQuery("insert", "picklist_definitions", time.Millisecond, errors.New("test error"))
			},
		},
		{
			name: "RecordExternalAPICall",
			operation: func(m *Metrics) {
				m.RecordExternalAPICall("/api/portal/internal/opportunities/x/exists", "GET", 200, time.Second, nil)
			},
		},
		{
			name: "IncrementFieldDefinitionCreated",
			operation: func(m *Metrics) {
				m.IncrementFieldDefinitionCreated()
			},
		},
		{
			name: "IncrementPicklistCreated",
			operation: func(m *Metrics) {
				m.IncrementPicklistCreated()
			},
		},
		{
			name: "SetFieldDefinitionsTotal",
			operation: func(m *Metrics) {
				m.SetFieldDefinitionsTotal(100)
			},
		},
		{
			name: "UpdateDBStats",
			operation: func(m *Metrics) {
				stats := sql.DBStats{
					OpenConnections: 10,
					InUse:           5,
					Idle:            5,
				}
				m.UpdateDBStats(stats)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := prometheus.NewRegistry()
			m := NewWithRegistry(registry, zap.NewNop())

			assert.NotPanics(t, func() {
				tt.operation(m)
			}, "Metric operation should not panic")
		})
	}
}

// TestSafeExecuteWithPanic tests that safeExecute properly handles panics
func TestSafeExecuteWithPanic(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	assert.NotPanics(t, func() {
		m.safeExecute("test_panic", func() {
			panic("intentional panic for testing")
		})
	}, "safeExecute should catch panics")
}

// TestMetricsWithNilLogger tests that metrics work even without a logger
func TestMetricsWithNilLogger(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, nil)

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/test", 200, time.Second)
		m.RecordDBQuery("select", "test", time.Millisecond, nil)
		m.IncrementFieldDefinitionCreated()
	}, "Metrics should work without a logger")
}

// TestCollectorPanicRecovery tests that the collector recovers from panics
func TestCollectorPanicRecovery(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	collector := &BusinessMetricsCollector{
		db:      nil,
		metrics: m,
		logger:  zap.NewNop(),
	}

	assert.NotPanics(t, func() {
		collector.collect()
	}, "Collector should handle errors gracefully")
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		err        error
		want       string
	}{
		{"not found", 404, nil, "not_found"},
		{"unauthorized", 401, nil, "unauthorized"},
		{"server error", 500, nil, "internal_server_error"},
		{"bad gateway", 502, nil, "bad_gateway"},
		{"connection refused", 0, errors.New("dial tcp: connection refused"), "connection_refused"},
		{"timeout", 0, errors.New("context deadline exceeded"), "timeout"},
		{"generic network", 0, errors.New("something broke"), "network_error"},
		{"no error", 0, nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getErrorType(tt.statusCode, tt.err); got != tt.want {
				t.Errorf("getErrorType(%d, %v) = %s, want %s", tt.statusCode, tt.err, got, tt.want)
			}
		})
	}
}
