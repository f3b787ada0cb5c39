package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paiban/tabuplan/internal/config"
	apperrors "github.com/paiban/tabuplan/pkg/errors"
)

// prompter 从终端逐项读取整数参数，空行保留当前值
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Int 读取一个整数
func (p *prompter) Int(field, label string, current int) (int, error) {
	fmt.Fprintf(p.out, "%s [%d]: ", label, current)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return 0, apperrors.Wrap(err, apperrors.CodeInvalidInput, "读取输入失败")
		}
		return 0, apperrors.InvalidInput(field, "输入已结束")
	}

	text := strings.TrimSpace(p.in.Text())
	if text == "" {
		return current, nil
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, apperrors.InvalidInput(field, fmt.Sprintf("%q 不是整数", text))
	}
	return v, nil
}

// Fill 依次询问五个排班参数
func (p *prompter) Fill(s *config.SchedulerConfig) error {
	fields := []struct {
		name  string
		label string
		dst   *int
	}{
		{"employees", "员工人数", &s.Employees},
		{"days", "排班天数", &s.Days},
		{"quota", "每人上班天数", &s.Quota},
		{"max_consecutive_off", "最多连续休息天数", &s.MaxConsecutiveOff},
		{"max_iterations", "最大迭代次数", &s.MaxIterations},
	}

	for _, f := range fields {
		v, err := p.Int(f.name, f.label, *f.dst)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}
