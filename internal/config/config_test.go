package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiban/tabuplan/pkg/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabuplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, model.Params{
		Employees:         3,
		Days:              7,
		Quota:             3,
		MaxConsecutiveOff: 2,
		MaxIterations:     500,
	}, cfg.Scheduler.Params())
	assert.Equal(t, model.DefaultTabuSize, cfg.Scheduler.TabuSize)
	assert.Equal(t, 1, cfg.Scheduler.Workers)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, `
app:
  env: production
log:
  level: debug
  format: json
scheduler:
  employees: 10
  days: 14
  quota: 9
  max_iterations: 2000
  seed: 42
  timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Scheduler.Employees)
	assert.Equal(t, 14, cfg.Scheduler.Days)
	assert.Equal(t, 9, cfg.Scheduler.Quota)
	assert.Equal(t, 2, cfg.Scheduler.MaxConsecutiveOff, "文件未设置的字段保留默认值")
	assert.Equal(t, 2000, cfg.Scheduler.MaxIterations)
	assert.Equal(t, int64(42), cfg.Scheduler.Seed)
	assert.Equal(t, 5*time.Second, cfg.Scheduler.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "scheduler:\n  employees: 10\n  days: 14\n")
	t.Setenv("TABUPLAN_SCHEDULER_EMPLOYEES", "4")
	t.Setenv("TABUPLAN_SCHEDULER_WORKERS", "8")
	t.Setenv("TABUPLAN_LOG_LEVEL", "warn")
	t.Setenv("TABUPLAN_METRICS_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Scheduler.Employees)
	assert.Equal(t, 14, cfg.Scheduler.Days)
	assert.Equal(t, 8, cfg.Scheduler.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("TABUPLAN_SCHEDULER_DAYS", "seven")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeFile(t, "scheduler: [not, a, map")

	_, err := Load(path)
	assert.Error(t, err)
}
