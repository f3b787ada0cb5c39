// Package render 将排班矩阵和分析报告渲染为终端文本
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/paiban/tabuplan/pkg/model"
	"github.com/paiban/tabuplan/pkg/stats"
)

// Weekdays 表头标签，超过 7 天时循环
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// 单元格符号
const (
	WorkMark = "W"
	OffMark  = "O"
)

var (
	colorWork    = lipgloss.Color("#8BC34A")
	colorOff     = lipgloss.Color("#9E9E9E")
	colorWarning = lipgloss.Color("#FFC107")
	colorDanger  = lipgloss.Color("#E53935")
	colorBorder  = lipgloss.Color("#5C6B7A")
)

// Styles 渲染样式
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Work   lipgloss.Style
	Off    lipgloss.Style
	Muted  lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
}

// DefaultStyles 默认样式
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center),
		Label:  lipgloss.NewStyle().Padding(0, 1),
		Work:   lipgloss.NewStyle().Foreground(colorWork).Bold(true).Padding(0, 1).Align(lipgloss.Center),
		Off:    lipgloss.NewStyle().Foreground(colorOff).Padding(0, 1).Align(lipgloss.Center),
		Muted:  lipgloss.NewStyle().Foreground(colorOff),
		Good:   lipgloss.NewStyle().Foreground(colorWork).Bold(true),
		Warn:   lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		Bad:    lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
	}
}

// Renderer 排班渲染器
type Renderer struct {
	styles Styles
}

// New 使用默认样式创建渲染器
func New() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// NewWithStyles 使用自定义样式创建渲染器
func NewWithStyles(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// DayLabel 返回第 d 天（从 0 开始）的表头
func DayLabel(d int) string {
	return Weekdays[d%len(Weekdays)]
}

// Schedule 渲染排班表：表头为星期，每个员工一行
func (r *Renderer) Schedule(s *model.Schedule) string {
	headers := make([]string, 0, s.Days()+1)
	headers = append(headers, "")
	for d := 0; d < s.Days(); d++ {
		headers = append(headers, DayLabel(d))
	}

	rows := make([][]string, 0, s.Employees())
	for e := 0; e < s.Employees(); e++ {
		row := make([]string, 0, s.Days()+1)
		row = append(row, "Employee "+strconv.Itoa(e+1))
		for d := 0; d < s.Days(); d++ {
			if s.IsWorking(e, d) {
				row = append(row, WorkMark)
			} else {
				row = append(row, OffMark)
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case col == 0:
				return r.styles.Label
			case rows[row][col] == WorkMark:
				return r.styles.Work
			default:
				return r.styles.Off
			}
		})

	return t.String()
}

// Legend 图例
func (r *Renderer) Legend() string {
	return r.styles.Muted.Render(fmt.Sprintf("图例: %s = 上班, %s = 休息", WorkMark, OffMark))
}

// Report 渲染分析报告
func (r *Renderer) Report(report *stats.Report) string {
	var sb strings.Builder

	sb.WriteString(r.styles.Title.Render("排班评估"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "总代价: %s\n", r.gradeStyle(report.Grade).Render(fmt.Sprintf("%.2f", report.Cost)))
	fmt.Fprintf(&sb, "连休超限天数: %d\n", report.TotalOffViolations)
	for _, es := range report.EmployeeStats {
		if es.OffViolations == 0 && es.QuotaDeviation == 0 {
			continue
		}
		fmt.Fprintf(&sb, "  员工 %d: 上班 %d 天, 配额偏差 %+d, 连休超限 %d 天\n",
			es.Employee+1, es.WorkDays, es.QuotaDeviation, es.OffViolations)
	}

	loads := make([]string, len(report.DailyLoad))
	for i, l := range report.DailyLoad {
		loads[i] = strconv.Itoa(l)
	}
	fmt.Fprintf(&sb, "每日在岗人数: [%s]\n", strings.Join(loads, ", "))
	fmt.Fprintf(&sb, "理想每日人数: %.1f\n", report.IdealLoad)
	fmt.Fprintf(&sb, "负载标准差: %.2f\n", report.Balance.StdDev)
	fmt.Fprintf(&sb, "质量等级: %s (%s)\n",
		r.gradeStyle(report.Grade).Render(string(report.Grade)), report.Grade.Description())

	return sb.String()
}

func (r *Renderer) gradeStyle(g stats.Grade) lipgloss.Style {
	switch g {
	case stats.GradePerfect, stats.GradeGood:
		return r.styles.Good
	case stats.GradeAcceptable:
		return r.styles.Warn
	default:
		return r.styles.Bad
	}
}

// Render 依次输出排班表、图例和报告
func (r *Renderer) Render(w io.Writer, s *model.Schedule, report *stats.Report) error {
	out := lipgloss.JoinVertical(lipgloss.Left,
		r.Schedule(s),
		r.Legend(),
		"",
		r.Report(report),
	)
	_, err := fmt.Fprintln(w, out)
	return err
}
