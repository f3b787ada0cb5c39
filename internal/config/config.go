// Package config 提供配置管理
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/paiban/tabuplan/pkg/logger"
	"github.com/paiban/tabuplan/pkg/model"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "TABUPLAN_"

// Config 应用配置
// 加载顺序：默认值 → YAML 文件 → 环境变量，命令行参数由调用方最后覆盖
type Config struct {
	App       AppConfig       `yaml:"app" envPrefix:"APP_"`
	Log       logger.Config   `yaml:"log" envPrefix:"LOG_"`
	Scheduler SchedulerConfig `yaml:"scheduler" envPrefix:"SCHEDULER_"`
	Metrics   MetricsConfig   `yaml:"metrics" envPrefix:"METRICS_"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name string `yaml:"name" env:"NAME"`
	Env  string `yaml:"env" env:"ENV"`
}

// SchedulerConfig 排班引擎配置
type SchedulerConfig struct {
	Employees         int           `yaml:"employees" env:"EMPLOYEES"`
	Days              int           `yaml:"days" env:"DAYS"`
	Quota             int           `yaml:"quota" env:"QUOTA"`
	MaxConsecutiveOff int           `yaml:"max_consecutive_off" env:"MAX_CONSECUTIVE_OFF"`
	MaxIterations     int           `yaml:"max_iterations" env:"MAX_ITERATIONS"`
	TabuSize          int           `yaml:"tabu_size" env:"TABU_SIZE"`
	Workers           int           `yaml:"workers" env:"WORKERS"`
	Seed              int64         `yaml:"seed" env:"SEED"`       // 0 表示按当前时间取种子
	Timeout           time.Duration `yaml:"timeout" env:"TIMEOUT"` // 0 表示不限时
}

// Params 转换为排班输入参数
func (c SchedulerConfig) Params() model.Params {
	return model.Params{
		Employees:         c.Employees,
		Days:              c.Days,
		Quota:             c.Quota,
		MaxConsecutiveOff: c.MaxConsecutiveOff,
		MaxIterations:     c.MaxIterations,
	}
}

// MetricsConfig 监控配置
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name: "tabuplan",
			Env:  "development",
		},
		Log: logger.DefaultConfig(),
		Scheduler: SchedulerConfig{
			Employees:         3,
			Days:              7,
			Quota:             3,
			MaxConsecutiveOff: 2,
			MaxIterations:     500,
			TabuSize:          model.DefaultTabuSize,
			Workers:           1,
		},
	}
}

// Load 加载配置，path 为空时跳过 YAML 文件
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok && len(aggErr.Errors) > 0 {
			// 只返回第一个错误使得日志更清晰
			return nil, fmt.Errorf("解析环境变量失败: %w", aggErr.Errors[0])
		}
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	return cfg, nil
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
