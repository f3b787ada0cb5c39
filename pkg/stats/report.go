package stats

import (
	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/scheduler/constraint"
)

// Grade 排班质量等级
type Grade string

const (
	GradePerfect          Grade = "perfect"
	GradeGood             Grade = "good"
	GradeAcceptable       Grade = "acceptable"
	GradeNeedsImprovement Grade = "needs_improvement"
)

// GradeOf 根据总代价评定质量等级
func GradeOf(cost float64) Grade {
	switch {
	case cost == 0:
		return GradePerfect
	case cost < 10:
		return GradeGood
	case cost < 30:
		return GradeAcceptable
	default:
		return GradeNeedsImprovement
	}
}

// Description 等级说明
func (g Grade) Description() string {
	switch g {
	case GradePerfect:
		return "排班完全满足所有约束"
	case GradeGood:
		return "排班质量良好，仅有轻微违反"
	case GradeAcceptable:
		return "排班质量可以接受"
	default:
		return "排班需要改进"
	}
}

// EmployeeStat 员工统计
type EmployeeStat struct {
	Employee       int `json:"employee"`
	WorkDays       int `json:"work_days"`
	QuotaDeviation int `json:"quota_deviation"`
	OffViolations  int `json:"off_violations"` // 超出连休上限的天数
}

// Report 排班分析报告
type Report struct {
	Cost               float64                     `json:"cost"`
	Penalties          map[constraint.Type]float64 `json:"penalties"`
	Feasible           bool                        `json:"feasible"`
	DailyLoad          []int                       `json:"daily_load"`
	IdealLoad          float64                     `json:"ideal_load"`
	Balance            LoadBalance                 `json:"balance"`
	EmployeeStats      []EmployeeStat              `json:"employee_stats"`
	TotalOffViolations int                         `json:"total_off_violations"`
	Grade              Grade                       `json:"grade"`
}

// Analyzer 排班分析器
type Analyzer struct {
	costModel *constraint.Manager
	quota     int
}

// NewAnalyzer 创建分析器，代价与违反详情都来自同一个代价模型
func NewAnalyzer(costModel *constraint.Manager, quota int) *Analyzer {
	return &Analyzer{
		costModel: costModel,
		quota:     quota,
	}
}

// Analyze 生成排班报告
func (a *Analyzer) Analyze(s *model.Schedule) *Report {
	result := a.costModel.Evaluate(s)
	loads := s.DailyLoads()

	stats := make([]EmployeeStat, s.Employees())
	for e := range stats {
		work := s.RowSum(e)
		stats[e] = EmployeeStat{
			Employee:       e,
			WorkDays:       work,
			QuotaDeviation: work - a.quota,
		}
	}

	total := 0
	for _, v := range result.ViolationsOf(constraint.TypeMaxConsecutiveDaysOff) {
		if v.Employee >= 0 && v.Employee < len(stats) {
			stats[v.Employee].OffViolations++
			total++
		}
	}

	return &Report{
		Cost:               result.Total,
		Penalties:          result.Penalties,
		Feasible:           result.Feasible(),
		DailyLoad:          loads,
		IdealLoad:          float64(s.Employees()) * float64(a.quota) / float64(s.Days()),
		Balance:            AnalyzeLoadBalance(loads),
		EmployeeStats:      stats,
		TotalOffViolations: total,
		Grade:              GradeOf(result.Total),
	}
}
