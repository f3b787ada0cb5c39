// Package constraints 约束库，描述代价模型中的各项惩罚
package constraints

import (
	"strconv"

	"github.com/paiban/tabuplan/pkg/scheduler/constraint"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint/builtin"
)

// ConstraintParam 约束参数定义
type ConstraintParam struct {
	Name        string `json:"name" yaml:"name"`
	Flag        string `json:"flag" yaml:"flag"` // 对应的命令行参数
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Min         string `json:"min,omitempty" yaml:"min,omitempty"`
}

// ConstraintDefinition 约束定义
type ConstraintDefinition struct {
	Name        constraint.Type     `json:"name" yaml:"name"`
	DisplayName string              `json:"display_name" yaml:"display_name"`
	Category    constraint.Category `json:"category" yaml:"category"`
	Weight      float64             `json:"weight" yaml:"weight"`
	Formula     string              `json:"formula" yaml:"formula"`
	Description string              `json:"description" yaml:"description"`
	Params      []ConstraintParam   `json:"params" yaml:"params"`
}

// GetLibrary 获取完整的约束库，顺序与代价模型的注册顺序一致
func GetLibrary() []ConstraintDefinition {
	return []ConstraintDefinition{
		{
			Name:        constraint.TypeWorkDayQuota,
			DisplayName: "上班天数配额",
			Category:    constraint.CategoryHard,
			Weight:      builtin.QuotaDeviationWeight,
			Formula:     "Σ_员工 " + weight(builtin.QuotaDeviationWeight) + "·|上班天数 − Q|",
			Description: "每名员工在周期内的上班天数应恰好等于配额。交换移动不改变行和，初始解满足配额后该项恒为 0。",
			Params: []ConstraintParam{
				{Name: "quota", Flag: "--quota", Type: "int", Description: "每人上班天数 Q", Default: "3", Min: "0"},
			},
		},
		{
			Name:        constraint.TypeMaxConsecutiveDaysOff,
			DisplayName: "最多连续休息天数",
			Category:    constraint.CategoryHard,
			Weight:      builtin.ConsecutiveOffPenalty,
			Formula:     "Σ_员工 Σ_超限休息日 " + weight(builtin.ConsecutiveOffPenalty),
			Description: "连续休息超过上限 C 后，每多休一天计一次惩罚；上班日将计数清零。",
			Params: []ConstraintParam{
				{Name: "max_consecutive_off", Flag: "--max-off", Type: "int", Description: "最多连续休息天数 C", Default: "2", Min: "0"},
			},
		},
		{
			Name:        constraint.TypeWorkloadBalance,
			DisplayName: "每日人数均衡",
			Category:    constraint.CategorySoft,
			Weight:      builtin.WorkloadDeviationWeight,
			Formula:     "Σ_日期 " + weight(builtin.WorkloadDeviationWeight) + "·|在岗人数 − E·Q/D|",
			Description: "每天在岗人数应尽量接近理想值 E·Q/D，理想值可以不是整数。",
			Params: []ConstraintParam{
				{Name: "employees", Flag: "--employees", Type: "int", Description: "员工人数 E", Default: "3", Min: "1"},
				{Name: "days", Flag: "--days", Type: "int", Description: "周期天数 D", Default: "7", Min: "1"},
			},
		},
	}
}

// Get 按类型查找约束定义
func Get(t constraint.Type) (ConstraintDefinition, bool) {
	for _, def := range GetLibrary() {
		if def.Name == t {
			return def, true
		}
	}
	return ConstraintDefinition{}, false
}

func weight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
