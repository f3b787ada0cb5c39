package optimizer

import (
	"context"

	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint/builtin"
)

// Solve 使用内置三项惩罚的代价模型执行一次完整搜索
func Solve(ctx context.Context, params model.Params, rng RandomSource, config *Config) (*Result, error) {
	search, err := NewTabuSearch(params, builtin.NewCostModel(params), rng, config)
	if err != nil {
		return nil, err
	}
	return search.Run(ctx)
}
