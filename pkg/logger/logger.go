// Package logger 提供统一的日志框架
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level 日志级别
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

// Config 日志配置
type Config struct {
	Level      string `yaml:"level" json:"level" env:"LEVEL"`
	Format     string `yaml:"format" json:"format" env:"FORMAT"` // json/console
	Output     string `yaml:"output" json:"output" env:"OUTPUT"` // stdout/stderr/file
	FilePath   string `yaml:"file_path,omitempty" json:"file_path,omitempty" env:"FILE_PATH"`
	TimeFormat string `yaml:"time_format,omitempty" json:"time_format,omitempty" env:"TIME_FORMAT"`
}

// DefaultConfig 返回默认配置
// 排班结果写到 stdout，日志默认走 stderr
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stderr",
		TimeFormat: time.RFC3339,
	}
}

// Init 初始化日志器
func Init(cfg Config) {
	once.Do(func() {
		logger = build(cfg)
	})
}

// build 根据配置构建日志器
func build(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	var output io.Writer
	switch cfg.Output {
	case "stdout":
		output = os.Stdout
	case "file":
		output = os.Stderr
		if cfg.FilePath != "" {
			f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err == nil {
				output = f
			}
		}
	default:
		output = os.Stderr
	}

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// parseLevel 解析日志级别
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Get 获取日志器
func Get() *zerolog.Logger {
	Init(DefaultConfig())
	return &logger
}

// Debug 记录调试日志
func Debug() *zerolog.Event {
	return Get().Debug()
}

// Info 记录信息日志
func Info() *zerolog.Event {
	return Get().Info()
}

// Warn 记录警告日志
func Warn() *zerolog.Event {
	return Get().Warn()
}

// Error 记录错误日志
func Error() *zerolog.Event {
	return Get().Error()
}

// WithError 添加错误信息
func WithError(err error) *zerolog.Event {
	return Get().Error().Err(err)
}

// WithField 添加字段
func WithField(key string, value interface{}) *zerolog.Logger {
	l := Get().With().Interface(key, value).Logger()
	return &l
}

// SchedulerLogger 排班引擎专用日志器
type SchedulerLogger struct {
	base *zerolog.Logger
}

// NewSchedulerLogger 创建排班引擎日志器
func NewSchedulerLogger() *SchedulerLogger {
	l := Get().With().Str("component", "scheduler").Logger()
	return &SchedulerLogger{base: &l}
}

// NewSchedulerLoggerWith 使用指定日志器创建排班引擎日志器（测试用）
func NewSchedulerLoggerWith(base zerolog.Logger) *SchedulerLogger {
	l := base.With().Str("component", "scheduler").Logger()
	return &SchedulerLogger{base: &l}
}

// StartSearch 记录禁忌搜索开始
func (l *SchedulerLogger) StartSearch(runID string, employees, days, quota int, initialCost float64) {
	l.base.Info().
		Str("run_id", runID).
		Int("employees", employees).
		Int("days", days).
		Int("quota", quota).
		Float64("initial_cost", initialCost).
		Msg("开始禁忌搜索")
}

// Improvement 记录发现更优解
func (l *SchedulerLogger) Improvement(runID string, iteration int, cost float64) {
	l.base.Debug().
		Str("run_id", runID).
		Int("iteration", iteration).
		Float64("cost", cost).
		Msg("发现更优解")
}

// SearchComplete 记录禁忌搜索完成
func (l *SchedulerLogger) SearchComplete(runID string, duration time.Duration, cost float64, iterations int, reason string) {
	l.base.Info().
		Str("run_id", runID).
		Dur("duration", duration).
		Float64("cost", cost).
		Int("iterations", iterations).
		Str("stop_reason", reason).
		Msg("禁忌搜索完成")
}
