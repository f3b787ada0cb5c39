package optimizer

import (
	"fmt"

	apperrors "github.com/paiban/tabuplan/pkg/errors"
	"github.com/paiban/tabuplan/pkg/model"
)

// RandomSource 初始化所需的随机源，*rand.Rand 满足该接口
type RandomSource interface {
	Perm(n int) []int
}

// InitialSchedule 为每个员工独立地无放回抽取 quota 个上班日
// 初始解按构造满足配额，每日人数的均衡交给搜索处理
func InitialSchedule(employees, days, quota int, rng RandomSource) (*model.Schedule, error) {
	switch {
	case employees <= 0:
		return nil, apperrors.ConfigurationError("employees", fmt.Sprintf("必须为正数，实际为 %d", employees))
	case days <= 0:
		return nil, apperrors.ConfigurationError("days", fmt.Sprintf("必须为正数，实际为 %d", days))
	case quota < 0:
		return nil, apperrors.ConfigurationError("quota", fmt.Sprintf("不能为负数，实际为 %d", quota))
	case quota > days:
		return nil, apperrors.ConfigurationError("quota", fmt.Sprintf("%d 超过周期天数 %d", quota, days))
	case rng == nil:
		return nil, apperrors.New(apperrors.CodeInternal, "未提供随机源")
	}

	s, err := model.NewSchedule(employees, days)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfiguration, "创建排班矩阵失败")
	}

	for e := 0; e < employees; e++ {
		for _, d := range rng.Perm(days)[:quota] {
			s.Set(e, d, true)
		}
	}

	return s, nil
}
