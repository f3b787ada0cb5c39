package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSearch(t *testing.T) {
	m := New(nil)

	m.RecordSearch("iteration_limit", 500, 12.5, 20*time.Millisecond)
	m.RecordSearch("empty_neighborhood", 3, 0, 2*time.Millisecond)

	assert.Equal(t, 503.0, testutil.ToFloat64(m.iterations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("iteration_limit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("empty_neighborhood")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.bestCost), "仪表盘保留最近一次的值")
	assert.Equal(t, 2, testutil.CollectAndCount(m.runs))
}

func TestWriteText(t *testing.T) {
	m := New(nil)
	m.RecordSearch("canceled", 7, 4.25, time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, m.WriteText(&buf))
	out := buf.String()

	assert.Contains(t, out, "# TYPE tabuplan_optimizer_iterations_total counter\n")
	assert.Contains(t, out, "tabuplan_optimizer_iterations_total 7\n")
	assert.Contains(t, out, `tabuplan_search_runs_total{stop_reason="canceled"} 1`)
	assert.Contains(t, out, "tabuplan_best_cost 4.25\n")
	assert.Contains(t, out, `tabuplan_search_duration_seconds_bucket{le="0.001"} 1`)
	assert.Contains(t, out, "tabuplan_search_duration_seconds_count 1\n")

	// 注册表按名称排序输出
	assert.Less(t,
		strings.Index(out, "tabuplan_best_cost"),
		strings.Index(out, "tabuplan_search_runs_total"))
}

func TestNew_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	assert.Same(t, reg, m.Registry())

	assert.Panics(t, func() { New(reg) }, "同一注册表不能重复注册")
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())

	before := testutil.ToFloat64(Default().iterations)
	RecordSearch("iteration_limit", 5, 1, time.Millisecond)
	assert.Equal(t, before+5, testutil.ToFloat64(Default().iterations))
}
