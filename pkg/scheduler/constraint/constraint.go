// Package constraint 定义约束接口和管理器
package constraint

import (
	"github.com/paiban/tabuplan/pkg/model"
)

// Type 约束类型标识
type Type string

const (
	TypeWorkDayQuota          Type = "work_day_quota"
	TypeMaxConsecutiveDaysOff Type = "max_consecutive_days_off"
	TypeWorkloadBalance       Type = "workload_balance"
)

// Category 约束类别
type Category string

const (
	CategoryHard Category = "hard" // 硬约束（优先满足）
	CategorySoft Category = "soft" // 软约束（尽量满足）
)

// Constraint 约束接口
// 所有约束都只产生惩罚值，不拒绝任何排班
type Constraint interface {
	// Name 返回约束名称
	Name() string

	// Type 返回约束类型
	Type() Type

	// Category 返回约束类别
	Category() Category

	// Weight 返回单位违反的惩罚值
	Weight() float64

	// Penalty 只计算惩罚值，用于搜索中的高频评估
	Penalty(s *model.Schedule) float64

	// Evaluate 计算惩罚值并给出违反详情
	Evaluate(s *model.Schedule) (penalty float64, details []ViolationDetail)
}

// NoIndex 表示违反详情不关联具体员工或日期
const NoIndex = -1

// ViolationDetail 约束违反详情
type ViolationDetail struct {
	ConstraintType Type    `json:"constraint_type"`
	ConstraintName string  `json:"constraint_name"`
	Employee       int     `json:"employee"`
	Day            int     `json:"day"`
	Message        string  `json:"message"`
	Severity       string  `json:"severity"` // error/warning
	Penalty        float64 `json:"penalty"`
}

// Result 约束评估结果
type Result struct {
	Total      float64           `json:"total"`
	Penalties  map[Type]float64  `json:"penalties"`
	Violations []ViolationDetail `json:"violations"`
}

// Feasible 所有约束都被精确满足
func (r *Result) Feasible() bool {
	return r.Total == 0
}

// ViolationsOf 返回指定类型的违反详情
func (r *Result) ViolationsOf(t Type) []ViolationDetail {
	var out []ViolationDetail
	for _, v := range r.Violations {
		if v.ConstraintType == t {
			out = append(out, v)
		}
	}
	return out
}
