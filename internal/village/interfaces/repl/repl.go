package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"VillageIdle/internal/village/app"
	"VillageIdle/modules/kit/logx"
)

// REPL 在标准输入上逐行读取操作者命令。
// 每行就是一条命令；回应全部走可观测通道（日志），提示符单独打到 out。
type REPL struct {
	svc *app.VillageService
	log logx.Logger
	in  io.Reader
	out io.Writer
}

func New(svc *app.VillageService, log logx.Logger) *REPL {
	return NewWithIO(svc, log, os.Stdin, os.Stdout)
}

// NewWithIO 允许注入输入输出流（测试用）。
func NewWithIO(svc *app.VillageService, log logx.Logger, in io.Reader, out io.Writer) *REPL {
	return &REPL{svc: svc, log: log, in: in, out: out}
}

// Run 阻塞读取命令，直到 exit、输入流关闭或 ctx 取消。
func (r *REPL) Run(ctx context.Context) {
	sc := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprint(r.out, "Enter command: ")
		if !sc.Scan() {
			// 输入流到头（EOF / 管道关闭），交互结束
			return
		}
		if quit := r.HandleLine(sc.Text()); quit {
			return
		}
	}
}

// HandleLine 处理一行命令，返回是否应当退出。
// 动作关键字大小写不敏感；空行静默忽略；校验失败的命令整体拒绝，状态不动。
func (r *REPL) HandleLine(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	switch strings.ToLower(parts[0]) {
	case "get":
		r.handleGet(parts)
	case "status":
		r.svc.Status()
	case "help":
		r.svc.Help()
	case "exit":
		r.svc.Farewell()
		return true
	default:
		r.report(app.ErrUnknownCommand.WithData("command", parts[0]))
	}
	return false
}

// handleGet 解析 `get <resource> with <number> villagers/villager`。
// 数量 token 固定在第 4 个位置；`with` 只是语法糖，不参与校验。
func (r *REPL) handleGet(parts []string) {
	if len(parts) < 4 {
		r.report(app.ErrBadUsage)
		return
	}
	if err := r.svc.Assign(parts[1], parts[3]); err != nil {
		r.report(err)
	}
}

// report 把命令错误回给操作者：业务拒绝打 Warn（带上下文字段），
// 系统错误打 Error，每条命令只打一条。
func (r *REPL) report(err error) {
	logx.ReportError(r.log, err)
}
