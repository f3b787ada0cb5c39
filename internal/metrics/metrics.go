// Package metrics 提供Prometheus监控指标
package metrics

import (
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Namespace 指标命名空间
const Namespace = "tabuplan"

// Metrics 禁忌搜索指标
type Metrics struct {
	registry   *prometheus.Registry
	iterations prometheus.Counter
	runs       *prometheus.CounterVec
	bestCost   prometheus.Gauge
	duration   prometheus.Histogram
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// New 在给定注册表上创建并注册指标，reg 为 nil 时新建一个
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: reg,
		// 优化迭代次数
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "optimizer",
			Name:      "iterations_total",
			Help:      "禁忌搜索迭代总次数",
		}),
		// 按终止原因统计的运行次数
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "禁忌搜索运行次数",
		}, []string{"stop_reason"}),
		// 最近一次运行的最优代价
		bestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "best_cost",
			Help:      "最近一次搜索的最优代价",
		}),
		// 搜索耗时
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "禁忌搜索耗时",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),
	}

	reg.MustRegister(m.iterations, m.runs, m.bestCost, m.duration)
	return m
}

// Default 获取全局指标
func Default() *Metrics {
	once.Do(func() {
		defaultMetrics = New(nil)
	})
	return defaultMetrics
}

// Registry 返回底层注册表
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSearch 记录一次禁忌搜索的指标
func (m *Metrics) RecordSearch(stopReason string, iterations int, cost float64, duration time.Duration) {
	m.iterations.Add(float64(iterations))
	m.runs.WithLabelValues(stopReason).Inc()
	m.bestCost.Set(cost)
	m.duration.Observe(duration.Seconds())
}

// WriteText 以Prometheus文本格式输出全部指标
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// RecordSearch 在全局指标上记录一次搜索
func RecordSearch(stopReason string, iterations int, cost float64, duration time.Duration) {
	Default().RecordSearch(stopReason, iterations, cost, duration)
}
