package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeLoadBalance_PerfectBalance(t *testing.T) {
	b := AnalyzeLoadBalance([]int{2, 2, 2, 2})

	assert.Equal(t, 2.0, b.Mean)
	assert.Equal(t, 0.0, b.Variance)
	assert.Equal(t, 0.0, b.Range)
	assert.InDelta(t, 0.0, b.Gini, 0.01)
}

func TestAnalyzeLoadBalance_Concentrated(t *testing.T) {
	b := AnalyzeLoadBalance([]int{0, 0, 0, 4})

	assert.Equal(t, 1.0, b.Mean)
	assert.Equal(t, 3.0, b.Variance)
	assert.Equal(t, 4.0, b.Max)
	assert.Equal(t, 0.0, b.Min)
	assert.InDelta(t, 0.75, b.Gini, 1e-9)
}

func TestAnalyzeLoadBalance_Empty(t *testing.T) {
	b := AnalyzeLoadBalance(nil)

	assert.Equal(t, LoadBalance{}, b)
}

func TestAnalyzeLoadBalance_AllZero(t *testing.T) {
	b := AnalyzeLoadBalance([]int{0, 0, 0})

	assert.Equal(t, 0.0, b.Gini)
	assert.Equal(t, 0.0, b.StdDev)
}
