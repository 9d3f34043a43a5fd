package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/turnier-api/internal/domain/common"
)

func TestOperationOutcomes(t *testing.T) {
	m := New()
	m.Operation("add_day", nil)
	m.Operation("add_day", nil)
	m.Operation("add_day", errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("add_day", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("add_day", OutcomeError)))
}

func TestWarningsByCode(t *testing.T) {
	m := New()
	var diags common.Diagnostics
	diags.Add(common.WarnStaleArena, "a")
	diags.Add(common.WarnStaleArena, "b")
	diags.Add(common.WarnUnknownBewerb, "c")
	m.Warnings(diags)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.warnings.WithLabelValues(common.WarnStaleArena)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.warnings.WithLabelValues(common.WarnUnknownBewerb)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Operation("x", nil)
	m.Warnings(common.Diagnostics{{Code: "x"}})
	m.ObserveSnapshot(DirectionSave, time.Second)
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveSnapshot(DirectionLoad, 20*time.Millisecond)
	m.Operation("save", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `turnier_operations_total{operation="save",outcome="ok"} 1`)
	assert.Contains(t, body, `turnier_snapshot_duration_seconds_count{direction="load"} 1`)
}
