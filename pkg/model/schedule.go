// Package model 定义排班引擎的核心数据模型
package model

import (
	"fmt"
	"strings"
)

// 单元格取值
const (
	Off  uint8 = 0 // 休息
	Work uint8 = 1 // 上班
)

// Schedule 员工×天的上班/休息矩阵
// 按行优先存储在一维切片中
type Schedule struct {
	employees int
	days      int
	cells     []uint8
}

// NewSchedule 创建全部休息的排班矩阵
func NewSchedule(employees, days int) (*Schedule, error) {
	if employees <= 0 || days <= 0 {
		return nil, fmt.Errorf("排班矩阵尺寸无效: employees=%d, days=%d", employees, days)
	}
	return &Schedule{
		employees: employees,
		days:      days,
		cells:     make([]uint8, employees*days),
	}, nil
}

// FromRows 从二维切片构建排班矩阵，各行长度必须一致且取值只能为 0/1
func FromRows(rows [][]uint8) (*Schedule, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("排班矩阵不能为空")
	}
	s, err := NewSchedule(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for e, row := range rows {
		if len(row) != s.days {
			return nil, fmt.Errorf("第 %d 行长度为 %d，期望 %d", e, len(row), s.days)
		}
		for d, v := range row {
			if v != Off && v != Work {
				return nil, fmt.Errorf("单元格 (%d,%d) 取值 %d 不是 0/1", e, d, v)
			}
			s.cells[e*s.days+d] = v
		}
	}
	return s, nil
}

// Employees 返回员工数
func (s *Schedule) Employees() int {
	return s.employees
}

// Days 返回天数
func (s *Schedule) Days() int {
	return s.days
}

// At 返回单元格取值
func (s *Schedule) At(employee, day int) uint8 {
	return s.cells[s.index(employee, day)]
}

// IsWorking 检查员工当天是否上班
func (s *Schedule) IsWorking(employee, day int) bool {
	return s.At(employee, day) == Work
}

// Set 设置单元格
func (s *Schedule) Set(employee, day int, working bool) {
	v := Off
	if working {
		v = Work
	}
	s.cells[s.index(employee, day)] = v
}

// Swap 原地交换同一员工两天的取值
func (s *Schedule) Swap(employee, dayA, dayB int) {
	i, j := s.index(employee, dayA), s.index(employee, dayB)
	s.cells[i], s.cells[j] = s.cells[j], s.cells[i]
}

// Apply 返回应用移动后的新矩阵，原矩阵不变
func (s *Schedule) Apply(m Move) *Schedule {
	next := s.Clone()
	next.Swap(m.Employee, m.DayA, m.DayB)
	return next
}

// Clone 深拷贝
func (s *Schedule) Clone() *Schedule {
	cells := make([]uint8, len(s.cells))
	copy(cells, s.cells)
	return &Schedule{
		employees: s.employees,
		days:      s.days,
		cells:     cells,
	}
}

// Row 返回某员工一行的只读视图
func (s *Schedule) Row(employee int) []uint8 {
	start := s.index(employee, 0)
	return s.cells[start : start+s.days : start+s.days]
}

// Rows 返回矩阵的二维拷贝
func (s *Schedule) Rows() [][]uint8 {
	rows := make([][]uint8, s.employees)
	for e := range rows {
		rows[e] = append([]uint8(nil), s.Row(e)...)
	}
	return rows
}

// RowSum 员工上班天数
func (s *Schedule) RowSum(employee int) int {
	sum := 0
	for _, v := range s.Row(employee) {
		sum += int(v)
	}
	return sum
}

// DailyLoads 每天上班人数
func (s *Schedule) DailyLoads() []int {
	loads := make([]int, s.days)
	for e := 0; e < s.employees; e++ {
		for d, v := range s.Row(e) {
			loads[d] += int(v)
		}
	}
	return loads
}

// Equal 检查两个矩阵是否相同
func (s *Schedule) Equal(other *Schedule) bool {
	if other == nil || s.employees != other.employees || s.days != other.days {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String 以 0/1 行文本输出
func (s *Schedule) String() string {
	var b strings.Builder
	for e := 0; e < s.employees; e++ {
		for _, v := range s.Row(e) {
			b.WriteByte('0' + v)
		}
		if e < s.employees-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (s *Schedule) index(employee, day int) int {
	if employee < 0 || employee >= s.employees || day < 0 || day >= s.days {
		panic(fmt.Sprintf("model: 下标越界 (%d,%d)，矩阵尺寸 %dx%d", employee, day, s.employees, s.days))
	}
	return employee*s.days + day
}

// Move 同一员工两天之间的交换
// (DayA, DayB) 有序：(a,b) 与 (b,a) 是两个不同的移动
type Move struct {
	Employee int `json:"employee"`
	DayA     int `json:"day_a"`
	DayB     int `json:"day_b"`
}

// String 返回移动描述
func (m Move) String() string {
	return fmt.Sprintf("swap(e=%d, %d<->%d)", m.Employee, m.DayA, m.DayB)
}
