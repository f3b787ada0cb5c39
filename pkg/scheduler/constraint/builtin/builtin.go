// Package builtin 提供内置约束实现
package builtin

import (
	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint"
)

// RegisterDefaultConstraints 注册默认约束到管理器
func RegisterDefaultConstraints(manager *constraint.Manager, params model.Params) {
	// 硬约束
	manager.Register(NewWorkDayQuotaConstraint(params.Quota))
	manager.Register(NewMaxConsecutiveDaysOffConstraint(params.MaxConsecutiveOff))

	// 软约束
	manager.Register(NewWorkloadBalanceConstraint(params.Quota))
}

// NewCostModel 创建包含三项惩罚的代价模型
func NewCostModel(params model.Params) *constraint.Manager {
	manager := constraint.NewManager()
	RegisterDefaultConstraints(manager, params)
	return manager
}
