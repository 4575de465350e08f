package metrics

// IncrementFieldDefinitionCreated increments the field definition creation counter
func (m *Metrics) IncrementFieldDefinitionCreated() {
	m.safeExecute("IncrementFieldDefinitionCreated", func() {
		m.FieldDefinitionCreatedTotal.Inc()
	})
}

// IncrementPicklistCreated increments the picklist creation counter
func (m *Metrics) IncrementPicklistCreated() {
	m.safeExecute("IncrementPicklistCreated", func() {
		m.PicklistCreatedTotal.Inc()
	})
}

// RecordValueWrite records one accepted custom field value write
func (m *Metrics) RecordValueWrite(entityType, fieldType string) {
	m.safeExecute("RecordValueWrite", func() {
		m.ValueWritesTotal.WithLabelValues(entityType, fieldType).Inc()
	})
}

// RecordValidationFailure records one rejected value write by error code
func (m *Metrics) RecordValidationFailure(code string) {
	m.safeExecute("RecordValidationFailure", func() {
		m.ValidationFailuresTotal.WithLabelValues(code).Inc()
	})
}

// RecordOrphanedValuesSwept records entity instances cleaned by the orphan sweep
func (m *Metrics) RecordOrphanedValuesSwept(count int) {
	m.safeExecute("RecordOrphanedValuesSwept", func() {
		m.OrphanedValuesSweptTotal.Add(float64(count))
	})
}

// SetFieldDefinitionsTotal sets total field definitions gauge
func (m *Metrics) SetFieldDefinitionsTotal(count int64) {
	m.safeExecute("SetFieldDefinitionsTotal", func() {
		m.FieldDefinitionsTotal.Set(float64(count))
	})
}

// SetPicklistsTotal sets total picklists gauge
func (m *Metrics) SetPicklistsTotal(count int64) {
	m.safeExecute("SetPicklistsTotal", func() {
		m.PicklistsTotal.Set(float64(count))
	})
}

// SetFieldValuesTotal sets total stored values gauge
func (m *Metrics) SetFieldValuesTotal(count int64) {
	m.safeExecute("SetFieldValuesTotal", func() {
		m.FieldValuesTotal.Set(float64(count))
	})
}
