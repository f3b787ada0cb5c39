package builtin

import (
	"fmt"

	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint"
)

// QuotaDeviationWeight 每偏离配额一天的惩罚值
const QuotaDeviationWeight = 20.0

// WorkDayQuotaConstraint 每人上班天数配额约束
// 交换移动不改变行和，但代价模型不假设调用方只传入满足配额的矩阵
type WorkDayQuotaConstraint struct {
	*BaseConstraint
	quota int
}

// NewWorkDayQuotaConstraint 创建配额约束
func NewWorkDayQuotaConstraint(quota int) *WorkDayQuotaConstraint {
	return &WorkDayQuotaConstraint{
		BaseConstraint: NewBaseConstraint(
			"上班天数配额",
			constraint.TypeWorkDayQuota,
			constraint.CategoryHard,
			QuotaDeviationWeight,
		),
		quota: quota,
	}
}

// Penalty 计算惩罚值
func (c *WorkDayQuotaConstraint) Penalty(s *model.Schedule) float64 {
	deviation := 0
	for e := 0; e < s.Employees(); e++ {
		deviation += abs(s.RowSum(e) - c.quota)
	}
	return float64(deviation) * c.weight
}

// Evaluate 评估整个排班
func (c *WorkDayQuotaConstraint) Evaluate(s *model.Schedule) (float64, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	total := 0.0

	for e := 0; e < s.Employees(); e++ {
		actual := s.RowSum(e)
		if actual == c.quota {
			continue
		}
		penalty := float64(abs(actual-c.quota)) * c.weight
		total += penalty
		violations = append(violations, c.CreateViolation(e, constraint.NoIndex,
			fmt.Sprintf("员工 %d 上班 %d 天，配额 %d 天", e+1, actual, c.quota),
			penalty))
	}

	return total, violations
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
