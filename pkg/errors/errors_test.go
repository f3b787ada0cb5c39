package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationError(t *testing.T) {
	err := ConfigurationError("quota", "不能超过天数")

	assert.Equal(t, CodeConfiguration, err.Code)
	assert.Equal(t, ExitConfiguration, err.ExitCode)
	assert.Contains(t, err.Error(), "quota")
	assert.True(t, IsConfiguration(err))
	assert.Equal(t, "不能超过天数", err.Fields["quota"])
}

func TestWrap_Unwrap(t *testing.T) {
	err := Wrap(context.Canceled, CodeCanceled, "搜索被取消")

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitCanceled, GetExitCode(err))
	assert.Contains(t, err.Error(), context.Canceled.Error())
}

func TestGetCode_Wrapped(t *testing.T) {
	inner := ConfigurationError("days", "必须为正数")
	outer := fmt.Errorf("加载失败: %w", inner)

	assert.Equal(t, CodeConfiguration, GetCode(outer))
	assert.True(t, IsConfiguration(outer))
	assert.Equal(t, ExitConfiguration, GetExitCode(outer))
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", fmt.Errorf("boom"), ExitFailure},
		{"internal", New(CodeInternal, "内部错误"), ExitFailure},
		{"invalid input", InvalidInput("employees", "非整数"), ExitConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestValidationErrors_ToAppError(t *testing.T) {
	ve := &ValidationErrors{}
	assert.False(t, ve.HasErrors())
	assert.Equal(t, "验证失败", ve.Error())

	ve.Add("Quota", "必须小于等于 Days")
	ve.Add("Employees", "必须大于等于 1")
	require.True(t, ve.HasErrors())

	err := ve.ToAppError()
	assert.Equal(t, CodeConfiguration, err.Code)
	assert.Len(t, err.Fields, 2)
	assert.Contains(t, err.Error(), "Quota")
}
