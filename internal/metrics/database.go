package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats publishes connection pool gauges from sql.DBStats. The stats
// collector hands the stats over as interface{} so recorders can be swapped
// out in tests.
func (m *Metrics) UpdateDBStats(statsInterface interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		stats, ok := statsInterface.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
		m.DBConnectionWaitTotal.Add(float64(stats.WaitCount))
		m.DBConnectionWaitDuration.Add(stats.WaitDuration.Seconds())
	})
}

// RecordDBQuery observes one query issued through GORM. Operation and table
// labels are normalized so a quoted, schema-qualified statement target lands
// in the same series as its bare form.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		op := strings.ToLower(operation)
		tbl := normalizeTable(table)
		m.DBQueryDuration.WithLabelValues(op, tbl).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(op, tbl).Inc()
		}
	})
}

// normalizeTable strips identifier quoting and any schema prefix, keeping the
// per-table label cardinality at one series per table.
func normalizeTable(table string) string {
	table = strings.ReplaceAll(table, `"`, "")
	if i := strings.LastIndex(table, "."); i >= 0 {
		table = table[i+1:]
	}
	return strings.ToLower(table)
}
