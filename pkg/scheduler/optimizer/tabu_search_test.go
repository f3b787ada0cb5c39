package optimizer

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/paiban/tabuplan/pkg/errors"
	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint/builtin"
)

func weekParams() model.Params {
	return model.Params{
		Employees:         3,
		Days:              7,
		Quota:             3,
		MaxConsecutiveOff: 2,
		MaxIterations:     500,
	}
}

func newSearch(t *testing.T, params model.Params, seed int64, config *Config) *TabuSearch {
	t.Helper()
	search, err := NewTabuSearch(params, builtin.NewCostModel(params), rand.New(rand.NewSource(seed)), config)
	require.NoError(t, err)
	return search
}

func TestTabuSearch_EndToEnd(t *testing.T) {
	params := weekParams()
	cm := builtin.NewCostModel(params)
	search := newSearch(t, params, 2024, nil)
	require.Equal(t, StateInitialized, search.State())

	result, err := search.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateTerminated, search.State())
	assert.Contains(t, []StopReason{StopEmptyNeighborhood, StopIterationLimit}, result.StopReason)
	assert.LessOrEqual(t, result.Iterations, params.MaxIterations)
	assert.NotEmpty(t, result.RunID)

	for e := 0; e < params.Employees; e++ {
		assert.Equal(t, params.Quota, result.Best.RowSum(e))
	}
	assert.False(t, math.IsInf(result.Cost, 0) || math.IsNaN(result.Cost))
	assert.GreaterOrEqual(t, result.Cost, 0.0)
	assert.Equal(t, cm.Cost(result.Best), result.Cost)
	assert.LessOrEqual(t, result.Cost, result.InitialCost)
	assert.LessOrEqual(t, search.TabuList().Len(), model.DefaultTabuSize)
}

func TestTabuSearch_SeedReproducible(t *testing.T) {
	first, err := newSearch(t, weekParams(), 99, nil).Run(context.Background())
	require.NoError(t, err)
	second, err := newSearch(t, weekParams(), 99, nil).Run(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(first.Best.Rows(), second.Best.Rows()); diff != "" {
		t.Errorf("相同种子的结果不一致 (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Iterations, second.Iterations)
}

func TestTabuSearch_ParallelMatchesSequential(t *testing.T) {
	params := model.Params{Employees: 5, Days: 10, Quota: 4, MaxConsecutiveOff: 2, MaxIterations: 60}

	sequential, err := newSearch(t, params, 11, &Config{TabuSize: 10, Workers: 1}).Run(context.Background())
	require.NoError(t, err)
	parallel, err := newSearch(t, params, 11, &Config{TabuSize: 10, Workers: 4}).Run(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(sequential.Best.Rows(), parallel.Best.Rows()); diff != "" {
		t.Errorf("并行评估改变了搜索结果 (-sequential +parallel):\n%s", diff)
	}
	assert.Equal(t, sequential.Cost, parallel.Cost)
	assert.Equal(t, sequential.Improvements, parallel.Improvements)
}

func TestTabuSearch_FullQuota(t *testing.T) {
	params := model.Params{Employees: 3, Days: 5, Quota: 5, MaxConsecutiveOff: 1, MaxIterations: 100}

	result, err := newSearch(t, params, 1, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StopEmptyNeighborhood, result.StopReason)
	assert.Equal(t, 0, result.Iterations)
	assert.Equal(t, 0.0, result.Cost)
	assert.Equal(t, []int{3, 3, 3, 3, 3}, result.Best.DailyLoads())
}

func TestTabuSearch_ZeroQuota(t *testing.T) {
	params := model.Params{Employees: 2, Days: 5, Quota: 0, MaxConsecutiveOff: 1, MaxIterations: 100}

	result, err := newSearch(t, params, 1, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StopEmptyNeighborhood, result.StopReason)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, result.Best.DailyLoads())
	// 每人 5 天连休，上限 1，各超 4 天
	assert.Equal(t, 80.0, result.Cost)
}

func TestTabuSearch_TabuExhaustsNeighborhood(t *testing.T) {
	// 只有 (0,1) 和 (1,0) 两个移动，两轮后都被禁忌
	params := model.Params{Employees: 1, Days: 2, Quota: 1, MaxConsecutiveOff: 1, MaxIterations: 100}
	search := newSearch(t, params, 3, nil)

	result, err := search.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StopEmptyNeighborhood, result.StopReason)
	assert.Equal(t, 2, result.Iterations)
	assert.ElementsMatch(t, []model.Move{move(0, 0, 1), move(0, 1, 0)}, search.TabuList().Moves())
}

func TestTabuSearch_IterationLimit(t *testing.T) {
	params := weekParams()
	params.MaxIterations = 1

	result, err := newSearch(t, params, 5, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StopIterationLimit, result.StopReason)
	assert.Equal(t, 1, result.Iterations)
}

func TestTabuSearch_Canceled(t *testing.T) {
	search := newSearch(t, weekParams(), 8, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := search.Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, apperrors.CodeCanceled, apperrors.GetCode(err))
	require.NotNil(t, result)
	assert.Equal(t, StopCanceled, result.StopReason)
	assert.Equal(t, 0, result.Iterations)
	assert.True(t, result.Best.Equal(search.Initial()))
	assert.Equal(t, search.InitialCost(), result.Cost)
}

func TestTabuSearch_RunTwice(t *testing.T) {
	search := newSearch(t, weekParams(), 8, nil)
	_, err := search.Run(context.Background())
	require.NoError(t, err)

	_, err = search.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidState, apperrors.GetCode(err))
}

func TestNewTabuSearch_ConfigurationError(t *testing.T) {
	params := weekParams()
	params.Quota = 8

	_, err := NewTabuSearch(params, builtin.NewCostModel(params), rand.New(rand.NewSource(1)), nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestNewTabuSearch_MissingCostModel(t *testing.T) {
	_, err := NewTabuSearch(weekParams(), nil, rand.New(rand.NewSource(1)), nil)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInternal, apperrors.GetCode(err))
}

func TestSolve(t *testing.T) {
	result, err := Solve(context.Background(), weekParams(), rand.New(rand.NewSource(4)), DefaultConfig())
	require.NoError(t, err)

	for e := 0; e < 3; e++ {
		assert.Equal(t, 3, result.Best.RowSum(e))
	}
}
