// Package optimizer 提供排班优化算法
package optimizer

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/paiban/tabuplan/pkg/model"
)

// CostEvaluator 代价评估接口，实现必须可并发调用
type CostEvaluator interface {
	Cost(s *model.Schedule) float64
}

// ParallelEvaluator 并行评估器
// 候选解互相独立且只读，按块分给各个工作协程计算代价
type ParallelEvaluator struct {
	workers   int
	evaluator CostEvaluator
}

// NewParallelEvaluator 创建并行评估器
func NewParallelEvaluator(workers int, evaluator CostEvaluator) *ParallelEvaluator {
	if workers <= 0 {
		workers = 1
	}
	return &ParallelEvaluator{
		workers:   workers,
		evaluator: evaluator,
	}
}

// Workers 返回工作协程数
func (p *ParallelEvaluator) Workers() int {
	return p.workers
}

// EvaluateBatch 为每个候选解填充 Cost
func (p *ParallelEvaluator) EvaluateBatch(ctx context.Context, candidates []*Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	if p.workers == 1 || len(candidates) < 2*p.workers {
		for _, c := range candidates {
			c.Cost = p.evaluator.Cost(c.Schedule)
		}
		return nil
	}

	chunk := (len(candidates) + p.workers - 1) / p.workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(candidates); start += chunk {
		batch := candidates[start:min(start+chunk, len(candidates))]
		g.Go(func() error {
			for _, c := range batch {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.Cost = p.evaluator.Cost(c.Schedule)
			}
			return nil
		})
	}

	return g.Wait()
}

// SelectCandidate 按生成顺序扫描候选解并选出下一个当前解
// 候选代价严格低于本轮已选代价，或严格低于历史最优代价时，都会替换已选候选（特赦准则）；
// 因此结果不一定是本轮代价最小的候选
func SelectCandidate(candidates []*Candidate, bestCost float64) *Candidate {
	bestNeighborCost := math.Inf(1)
	var selected *Candidate

	for _, c := range candidates {
		if c.Cost < bestNeighborCost || c.Cost < bestCost {
			bestNeighborCost = c.Cost
			selected = c
		}
	}

	return selected
}
