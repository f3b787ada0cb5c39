// Package stats 提供排班统计分析功能
package stats

import (
	"math"
	"sort"
)

// LoadBalance 每日上班人数的分布指标
type LoadBalance struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Max      float64 `json:"max"`
	Min      float64 `json:"min"`
	Range    float64 `json:"range"`
	Gini     float64 `json:"gini"` // 0=完全均衡, 1=完全集中
}

// AnalyzeLoadBalance 计算每日人数的均衡度
func AnalyzeLoadBalance(loads []int) LoadBalance {
	values := make([]float64, len(loads))
	for i, l := range loads {
		values[i] = float64(l)
	}

	mean := calculateMean(values)
	variance := calculateVariance(values, mean)
	maxV, minV := calculateRange(values)

	return LoadBalance{
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Max:      maxV,
		Min:      minV,
		Range:    maxV - minV,
		Gini:     calculateGini(values),
	}
}

// calculateMean 计算平均值
func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// calculateVariance 计算方差
func calculateVariance(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	return sumSquares / float64(len(values))
}

// calculateRange 计算极值
func calculateRange(values []float64) (max, min float64) {
	if len(values) == 0 {
		return 0, 0
	}
	max, min = values[0], values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return
}

// calculateGini 计算基尼系数
func calculateGini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	if sum == 0 {
		return 0
	}

	gini := 0.0
	for i, v := range sorted {
		gini += (2*float64(i+1) - float64(n) - 1) * v
	}

	gini = gini / (float64(n) * sum)
	return math.Max(0, math.Min(1, gini))
}
