package builtin

import (
	"fmt"

	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint"
)

// ConsecutiveOffPenalty 超出连休上限的每一天的惩罚值
const ConsecutiveOffPenalty = 10.0

// MaxConsecutiveDaysOffConstraint 最大连续休息天数约束
// 连休计数只在上班日清零，超出上限后的每一天都计一次惩罚
type MaxConsecutiveDaysOffConstraint struct {
	*BaseConstraint
	maxDaysOff int
}

// NewMaxConsecutiveDaysOffConstraint 创建最大连续休息天数约束
func NewMaxConsecutiveDaysOffConstraint(maxDaysOff int) *MaxConsecutiveDaysOffConstraint {
	return &MaxConsecutiveDaysOffConstraint{
		BaseConstraint: NewBaseConstraint(
			"最大连续休息天数",
			constraint.TypeMaxConsecutiveDaysOff,
			constraint.CategoryHard,
			ConsecutiveOffPenalty,
		),
		maxDaysOff: maxDaysOff,
	}
}

// MaxDaysOff 返回连休上限
func (c *MaxConsecutiveDaysOffConstraint) MaxDaysOff() int {
	return c.maxDaysOff
}

// Penalty 计算惩罚值
func (c *MaxConsecutiveDaysOffConstraint) Penalty(s *model.Schedule) float64 {
	overflow := 0
	for e := 0; e < s.Employees(); e++ {
		overflow += OffOverflowDays(s.Row(e), c.maxDaysOff)
	}
	return float64(overflow) * c.weight
}

// Evaluate 评估整个排班
func (c *MaxConsecutiveDaysOffConstraint) Evaluate(s *model.Schedule) (float64, []constraint.ViolationDetail) {
	var violations []constraint.ViolationDetail
	total := 0.0

	for e := 0; e < s.Employees(); e++ {
		consecutive := 0
		for d, v := range s.Row(e) {
			if v == model.Work {
				consecutive = 0
				continue
			}
			consecutive++
			if consecutive > c.maxDaysOff {
				total += c.weight
				violations = append(violations, c.CreateViolation(e, d,
					fmt.Sprintf("员工 %d 在第 %d 天已连续休息 %d 天，超过上限 %d", e+1, d+1, consecutive, c.maxDaysOff),
					c.weight))
			}
		}
	}

	return total, violations
}

// OffOverflowDays 统计一行中超出连休上限的休息天数
func OffOverflowDays(row []uint8, maxDaysOff int) int {
	overflow := 0
	consecutive := 0
	for _, v := range row {
		if v == model.Work {
			consecutive = 0
			continue
		}
		consecutive++
		if consecutive > maxDaysOff {
			overflow++
		}
	}
	return overflow
}
