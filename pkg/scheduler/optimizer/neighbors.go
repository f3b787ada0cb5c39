// Package optimizer 提供排班优化算法
package optimizer

import (
	"github.com/paiban/tabuplan/pkg/model"
)

// Candidate 邻域候选解
type Candidate struct {
	Schedule *model.Schedule
	Move     model.Move
	Cost     float64
}

// NeighborhoodGenerator 邻域生成器
// 对每个员工的每一对有序日期 (a,b)，若两格一上一休则交换得到候选；
// 交换不改变行和，因此候选解保持每人的上班天数
type NeighborhoodGenerator struct{}

// NewNeighborhoodGenerator 创建邻域生成器
func NewNeighborhoodGenerator() *NeighborhoodGenerator {
	return &NeighborhoodGenerator{}
}

// Generate 生成当前解的全部非禁忌邻居
// 顺序固定为 员工 → dayA → dayB，选择时的并列判断依赖这个顺序
func (n *NeighborhoodGenerator) Generate(current *model.Schedule, tabu TabuChecker) []*Candidate {
	candidates := make([]*Candidate, 0, n.Size(current))

	for e := 0; e < current.Employees(); e++ {
		row := current.Row(e)
		for a := range row {
			for b := range row {
				if a == b || row[a] == row[b] {
					continue
				}
				move := model.Move{Employee: e, DayA: a, DayB: b}
				if tabu != nil && tabu.Contains(move) {
					continue
				}
				candidates = append(candidates, &Candidate{
					Schedule: current.Apply(move),
					Move:     move,
				})
			}
		}
	}

	return candidates
}

// Size 返回不考虑禁忌时的邻域大小
// 每个员工贡献 2*上班天数*休息天数 个有序交换
func (n *NeighborhoodGenerator) Size(current *model.Schedule) int {
	total := 0
	for e := 0; e < current.Employees(); e++ {
		work := current.RowSum(e)
		total += 2 * work * (current.Days() - work)
	}
	return total
}
