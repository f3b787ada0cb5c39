// TabuPlan 排班优化命令行
// 主程序入口

package main

import (
	"fmt"
	"os"

	apperrors "github.com/paiban/tabuplan/pkg/errors"
)

// 构建信息（通过 ldflags 注入）
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(apperrors.GetExitCode(err))
	}
}
