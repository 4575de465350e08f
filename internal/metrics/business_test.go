package metrics

import (
	"testing"
)

func TestIncrementFieldDefinitionCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.FieldDefinitionCreatedTotal)
	m.IncrementFieldDefinitionCreated()

	newValue := getCounterValue(t, m.FieldDefinitionCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementPicklistCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.PicklistCreatedTotal)
	m.IncrementPicklistCreated()

	newValue := getCounterValue(t, m.PicklistCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestSetFieldDefinitionsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero definitions", 0},
		{"one definition", 1},
		{"multiple definitions", 42},
		{"large number", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetFieldDefinitionsTotal(tt.count)
			value := getGaugeValue(t, m.FieldDefinitionsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSetPicklistsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero picklists", 0},
		{"one picklist", 1},
		{"multiple picklists", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetPicklistsTotal(tt.count)
			value := getGaugeValue(t, m.PicklistsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestRecordOrphanedValuesSwept(t *testing.T) {
	m := getTestMetrics()

	m.RecordOrphanedValuesSwept(3)
	m.RecordOrphanedValuesSwept(2)

	if value := getCounterValue(t, m.OrphanedValuesSweptTotal); value != 5 {
		t.Errorf("Expected counter value 5, got %f", value)
	}
}

func TestRecordValueWrite(t *testing.T) {
	m := getTestMetrics()

	m.RecordValueWrite("opportunity", "currency")
	m.RecordValueWrite("opportunity", "currency")
	m.RecordValueWrite("account", "text")

	counter, err := m.ValueWritesTotal.GetMetricWithLabelValues("opportunity", "currency")
	if err != nil {
		t.Fatalf("Failed to get counter: %v", err)
	}
	if value := getCounterValue(t, counter); value != 2 {
		t.Errorf("Expected counter value 2, got %f", value)
	}
}

func TestRecordValidationFailure(t *testing.T) {
	m := getTestMetrics()

	m.RecordValidationFailure("FORMAT_ERROR")
	m.RecordValidationFailure("FORMAT_ERROR")
	m.RecordValidationFailure("RANGE_ERROR")

	counter, err := m.ValidationFailuresTotal.GetMetricWithLabelValues("FORMAT_ERROR")
	if err != nil {
		t.Fatalf("Failed to get counter: %v", err)
	}
	if value := getCounterValue(t, counter); value != 2 {
		t.Errorf("Expected counter value 2, got %f", value)
	}
}
