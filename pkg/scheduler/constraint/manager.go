// Package constraint 定义约束接口和管理器
package constraint

import (
	"sort"
	"sync"

	"github.com/paiban/tabuplan/pkg/model"
)

// Manager 约束管理器，即排班的代价模型
// 代价为所有已注册约束惩罚值之和，每次都完整计算全部约束
type Manager struct {
	constraints []Constraint
	mu          sync.RWMutex
}

// NewManager 创建约束管理器
func NewManager() *Manager {
	return &Manager{
		constraints: make([]Constraint, 0),
	}
}

// Register 注册约束
func (m *Manager) Register(c Constraint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 检查是否已存在同类型约束
	for i, existing := range m.constraints {
		if existing.Type() == c.Type() {
			m.constraints[i] = c // 替换
			return
		}
	}

	m.constraints = append(m.constraints, c)

	// 硬约束在前，权重高的在前
	sort.SliceStable(m.constraints, func(i, j int) bool {
		ci, cj := m.constraints[i], m.constraints[j]
		if ci.Category() != cj.Category() {
			return ci.Category() == CategoryHard
		}
		return ci.Weight() > cj.Weight()
	})
}

// Unregister 注销约束
func (m *Manager) Unregister(t Type) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, c := range m.constraints {
		if c.Type() == t {
			m.constraints = append(m.constraints[:i], m.constraints[i+1:]...)
			return
		}
	}
}

// GetConstraint 获取约束
func (m *Manager) GetConstraint(t Type) Constraint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.constraints {
		if c.Type() == t {
			return c
		}
	}
	return nil
}

// GetAll 获取所有约束
func (m *Manager) GetAll() []Constraint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Constraint, len(m.constraints))
	copy(result, m.constraints)
	return result
}

// Count 返回约束数量
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.constraints)
}

// Cost 计算排班总代价，可并发调用
func (m *Manager) Cost(s *model.Schedule) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, c := range m.constraints {
		total += c.Penalty(s)
	}
	return total
}

// Evaluate 评估所有约束并汇总违反详情
func (m *Manager) Evaluate(s *model.Schedule) *Result {
	constraints := m.GetAll()

	result := &Result{
		Penalties:  make(map[Type]float64, len(constraints)),
		Violations: make([]ViolationDetail, 0),
	}

	for _, c := range constraints {
		penalty, details := c.Evaluate(s)
		result.Total += penalty
		result.Penalties[c.Type()] = penalty
		result.Violations = append(result.Violations, details...)
	}

	return result
}
