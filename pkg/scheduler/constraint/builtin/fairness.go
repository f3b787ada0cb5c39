package builtin

import (
	"fmt"
	"math"

	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint"
)

// WorkloadDeviationWeight 每日人数偏离理想值的惩罚系数
const WorkloadDeviationWeight = 2.0

// WorkloadBalanceConstraint 每日工作量均衡约束
// 理想人数为 员工数*配额/天数，不取整
type WorkloadBalanceConstraint struct {
	*BaseConstraint
	quota int
}

// NewWorkloadBalanceConstraint 创建工作量均衡约束
func NewWorkloadBalanceConstraint(quota int) *WorkloadBalanceConstraint {
	return &WorkloadBalanceConstraint{
		BaseConstraint: NewBaseConstraint(
			"每日工作量均衡",
			constraint.TypeWorkloadBalance,
			constraint.CategorySoft,
			WorkloadDeviationWeight,
		),
		quota: quota,
	}
}

// IdealLoad 返回给定矩阵的理想每日人数
func (c *WorkloadBalanceConstraint) IdealLoad(s *model.Schedule) float64 {
	return float64(s.Employees()) * float64(c.quota) / float64(s.Days())
}

// Penalty 计算惩罚值
func (c *WorkloadBalanceConstraint) Penalty(s *model.Schedule) float64 {
	ideal := c.IdealLoad(s)
	total := 0.0
	for _, load := range s.DailyLoads() {
		total += math.Abs(float64(load)-ideal) * c.weight
	}
	return total
}

// Evaluate 评估整个排班
func (c *WorkloadBalanceConstraint) Evaluate(s *model.Schedule) (float64, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	ideal := c.IdealLoad(s)
	total := 0.0

	for d, load := range s.DailyLoads() {
		penalty := math.Abs(float64(load)-ideal) * c.weight
		total += penalty
		if penalty > 0 {
			violations = append(violations, c.CreateViolation(constraint.NoIndex, d,
				fmt.Sprintf("第 %d 天上班 %d 人，理想 %.2f 人", d+1, load, ideal),
				penalty))
		}
	}

	return total, violations
}
