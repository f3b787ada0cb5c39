package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/paiban/tabuplan/internal/config"
	"github.com/paiban/tabuplan/internal/metrics"
	"github.com/paiban/tabuplan/internal/render"
	apperrors "github.com/paiban/tabuplan/pkg/errors"
	"github.com/paiban/tabuplan/pkg/logger"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint/builtin"
	"github.com/paiban/tabuplan/pkg/scheduler/optimizer"
	"github.com/paiban/tabuplan/pkg/stats"
)

// options 命令行参数
type options struct {
	configPath  string
	employees   int
	days        int
	quota       int
	maxOff      int
	iterations  int
	tabuSize    int
	workers     int
	seed        int64
	timeout     time.Duration
	logLevel    string
	logFormat   string
	metrics     bool
	interactive bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tabuplan",
		Short: "基于禁忌搜索的员工上班/休息排班",
		Long: `tabuplan 为一组员工生成上班/休息排班表。

每名员工在周期内上班天数等于配额，连续休息不超过上限，并使每天在岗人数尽量均衡。
参数按 默认值 → 配置文件 → TABUPLAN_ 环境变量 → 命令行参数 的顺序覆盖。`,
		Example: `  tabuplan --employees 5 --days 14 --quota 10 --max-off 2
  tabuplan --config tabuplan.yaml --seed 42
  tabuplan --interactive`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML 配置文件路径")
	flags.IntVarP(&opts.employees, "employees", "e", 0, "员工人数")
	flags.IntVarP(&opts.days, "days", "d", 0, "排班周期天数")
	flags.IntVarP(&opts.quota, "quota", "q", 0, "每名员工的上班天数")
	flags.IntVar(&opts.maxOff, "max-off", 0, "最多连续休息天数")
	flags.IntVarP(&opts.iterations, "iterations", "n", 0, "最大迭代次数")
	flags.IntVar(&opts.tabuSize, "tabu-size", 0, "禁忌表容量")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "并行评估协程数")
	flags.Int64Var(&opts.seed, "seed", 0, "随机种子，0 表示按当前时间")
	flags.DurationVar(&opts.timeout, "timeout", 0, "搜索超时，0 表示不限时")
	flags.StringVar(&opts.logLevel, "log-level", "", "日志级别 debug/info/warn/error/disabled")
	flags.StringVar(&opts.logFormat, "log-format", "", "日志格式 console/json")
	flags.BoolVar(&opts.metrics, "metrics", false, "结束后向 stderr 输出指标")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "交互式输入排班参数")

	cmd.AddCommand(newVersionCmd(), newConstraintsCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本信息",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "TabuPlan v%s\nBuild: %s (%s)\n", Version, BuildTime, GitCommit)
		},
	}
}

// applyFlags 只用显式设置过的命令行参数覆盖配置
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	s := &cfg.Scheduler

	if flags.Changed("employees") {
		s.Employees = opts.employees
	}
	if flags.Changed("days") {
		s.Days = opts.days
	}
	if flags.Changed("quota") {
		s.Quota = opts.quota
	}
	if flags.Changed("max-off") {
		s.MaxConsecutiveOff = opts.maxOff
	}
	if flags.Changed("iterations") {
		s.MaxIterations = opts.iterations
	}
	if flags.Changed("tabu-size") {
		s.TabuSize = opts.tabuSize
	}
	if flags.Changed("workers") {
		s.Workers = opts.workers
	}
	if flags.Changed("seed") {
		s.Seed = opts.seed
	}
	if flags.Changed("timeout") {
		s.Timeout = opts.timeout
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = opts.metrics
	}
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeConfiguration, "加载配置失败")
	}
	applyFlags(cmd, opts, cfg)

	if opts.interactive {
		p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err := p.Fill(&cfg.Scheduler); err != nil {
			return err
		}
	}

	logger.Init(cfg.Log)

	params := cfg.Scheduler.Params()
	if err := params.Validate(); err != nil {
		return err
	}

	seed := cfg.Scheduler.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Scheduler.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Scheduler.Timeout)
		defer cancel()
	}

	costModel := builtin.NewCostModel(params)
	search, err := optimizer.NewTabuSearch(params, costModel, rand.New(rand.NewSource(seed)), &optimizer.Config{
		TabuSize: cfg.Scheduler.TabuSize,
		Workers:  cfg.Scheduler.Workers,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("run_id", search.RunID()).
		Int64("seed", seed).
		Int("workers", cfg.Scheduler.Workers).
		Msg("开始排班")

	result, runErr := search.Run(ctx)
	if result == nil {
		return runErr
	}

	metrics.RecordSearch(string(result.StopReason), result.Iterations, result.Cost, result.Duration)

	report := stats.NewAnalyzer(costModel, params.Quota).Analyze(result.Best)
	out := cmd.OutOrStdout()
	if err := render.New().Render(out, result.Best, report); err != nil {
		return err
	}
	fmt.Fprintf(out, "迭代 %d 次, 改进 %d 次, 终止原因: %s, 耗时 %s, 随机种子: %d\n",
		result.Iterations, result.Improvements, result.StopReason, result.Duration.Round(time.Microsecond), seed)

	if cfg.Metrics.Enabled {
		if err := metrics.Default().WriteText(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	return runErr
}
