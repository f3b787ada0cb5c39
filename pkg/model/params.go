package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/paiban/tabuplan/pkg/errors"
)

// DefaultTabuSize 默认禁忌表容量
const DefaultTabuSize = 10

// Params 排班输入参数
type Params struct {
	Employees         int `json:"employees" yaml:"employees" validate:"min=1"`                    // 员工数 E
	Days              int `json:"days" yaml:"days" validate:"min=1"`                              // 周期天数 D
	Quota             int `json:"quota" yaml:"quota" validate:"min=0,ltefield=Days"`              // 每人上班天数 Q
	MaxConsecutiveOff int `json:"max_consecutive_off" yaml:"max_consecutive_off" validate:"min=0"` // 最大连续休息天数 C
	MaxIterations     int `json:"max_iterations" yaml:"max_iterations" validate:"min=1"`          // 迭代预算
}

// IdealLoad 理想的每日上班人数 E*Q/D，不取整
func (p Params) IdealLoad() float64 {
	if p.Days == 0 {
		return 0
	}
	return float64(p.Employees) * float64(p.Quota) / float64(p.Days)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate 校验参数，失败时返回 CONFIGURATION_ERROR
func (p Params) Validate() error {
	err := getValidator().Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Wrap(err, apperrors.CodeConfiguration, "排班参数校验失败")
	}

	ve := &apperrors.ValidationErrors{}
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), describe(fe))
	}
	return ve.ToAppError()
}

// describe 将校验失败转换为可读信息
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("必须大于等于 %s，实际为 %v", fe.Param(), fe.Value())
	case "ltefield":
		return fmt.Sprintf("不能超过 %s，实际为 %v", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("未通过 %s 校验", fe.Tag())
	}
}
