// Package optimizer 提供排班优化算法
package optimizer

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/paiban/tabuplan/pkg/errors"
	"github.com/paiban/tabuplan/pkg/logger"
	"github.com/paiban/tabuplan/pkg/model"
)

// Config 禁忌搜索配置
type Config struct {
	TabuSize int `json:"tabu_size"` // 禁忌表容量
	Workers  int `json:"workers"`   // 并行评估协程数，1 表示串行
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		TabuSize: model.DefaultTabuSize,
		Workers:  1,
	}
}

// State 搜索状态
type State string

const (
	StateInitialized State = "initialized"
	StateIterating   State = "iterating"
	StateTerminated  State = "terminated"
)

// StopReason 搜索终止原因
type StopReason string

const (
	StopEmptyNeighborhood StopReason = "empty_neighborhood" // 所有移动都被禁忌或无可交换的格子
	StopIterationLimit    StopReason = "iteration_limit"
	StopCanceled          StopReason = "canceled"
)

// Result 搜索结果
type Result struct {
	RunID        string          `json:"run_id"`
	Best         *model.Schedule `json:"-"`
	Cost         float64         `json:"cost"`
	InitialCost  float64         `json:"initial_cost"`
	Iterations   int             `json:"iterations"`
	Improvements int             `json:"improvements"`
	StopReason   StopReason      `json:"stop_reason"`
	Duration     time.Duration   `json:"duration"`
}

// TabuSearch 禁忌搜索引擎
// 当前解、最优解和禁忌表都归引擎独占
type TabuSearch struct {
	runID     string
	params    model.Params
	config    *Config
	cost      CostEvaluator
	neighbors *NeighborhoodGenerator
	evaluator *ParallelEvaluator
	tabuList  *TabuList
	logger    *logger.SchedulerLogger

	state       State
	initial     *model.Schedule
	initialCost float64
}

// NewTabuSearch 校验参数并生成随机初始解，引擎进入 INITIALIZED 状态
func NewTabuSearch(params model.Params, cost CostEvaluator, rng RandomSource, config *Config) (*TabuSearch, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if cost == nil {
		return nil, apperrors.New(apperrors.CodeInternal, "未提供代价模型")
	}
	if config == nil {
		config = DefaultConfig()
	}

	initial, err := InitialSchedule(params.Employees, params.Days, params.Quota, rng)
	if err != nil {
		return nil, err
	}

	return &TabuSearch{
		runID:       uuid.NewString(),
		params:      params,
		config:      config,
		cost:        cost,
		neighbors:   NewNeighborhoodGenerator(),
		evaluator:   NewParallelEvaluator(config.Workers, cost),
		tabuList:    NewTabuList(config.TabuSize),
		logger:      logger.NewSchedulerLogger(),
		state:       StateInitialized,
		initial:     initial,
		initialCost: cost.Cost(initial),
	}, nil
}

// RunID 返回本次搜索的标识
func (t *TabuSearch) RunID() string {
	return t.runID
}

// State 返回当前状态
func (t *TabuSearch) State() State {
	return t.state
}

// Initial 返回初始解的拷贝
func (t *TabuSearch) Initial() *model.Schedule {
	return t.initial.Clone()
}

// InitialCost 返回初始解代价
func (t *TabuSearch) InitialCost() float64 {
	return t.initialCost
}

// TabuList 返回禁忌表
func (t *TabuSearch) TabuList() *TabuList {
	return t.tabuList
}

// Run 执行禁忌搜索，每个引擎只能运行一次
// 邻域为空或迭代预算用尽时终止；上下文只在迭代之间检查，取消时返回已知最优解和 ctx.Err()
func (t *TabuSearch) Run(ctx context.Context) (*Result, error) {
	if t.state != StateInitialized {
		return nil, apperrors.New(apperrors.CodeInvalidState, "搜索引擎已运行").
			WithField("state", string(t.state))
	}
	t.state = StateIterating
	start := time.Now()

	current := t.initial.Clone()
	best := current.Clone()
	bestCost := t.initialCost

	result := &Result{
		RunID:       t.runID,
		InitialCost: t.initialCost,
		StopReason:  StopIterationLimit,
	}

	t.logger.StartSearch(t.runID, t.params.Employees, t.params.Days, t.params.Quota, t.initialCost)

	var runErr error
	for i := 0; i < t.params.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			result.StopReason = StopCanceled
			runErr = apperrors.Wrap(err, apperrors.CodeCanceled, "禁忌搜索被取消")
			break
		}

		candidates := t.neighbors.Generate(current, t.tabuList)
		if len(candidates) == 0 {
			result.StopReason = StopEmptyNeighborhood
			break
		}

		if err := t.evaluator.EvaluateBatch(ctx, candidates); err != nil {
			result.StopReason = StopCanceled
			runErr = apperrors.Wrap(err, apperrors.CodeCanceled, "禁忌搜索被取消")
			break
		}

		selected := SelectCandidate(candidates, bestCost)
		if selected == nil {
			result.StopReason = StopEmptyNeighborhood
			break
		}

		current = selected.Schedule
		t.tabuList.Add(selected.Move)
		result.Iterations++

		if selected.Cost < bestCost {
			best = current.Clone()
			bestCost = selected.Cost
			result.Improvements++
			t.logger.Improvement(t.runID, i, bestCost)
		}
	}

	t.state = StateTerminated
	result.Best = best
	result.Cost = bestCost
	result.Duration = time.Since(start)

	t.logger.SearchComplete(t.runID, result.Duration, result.Cost, result.Iterations, string(result.StopReason))

	return result, runErr
}
