package logx

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// 接口层统一的错误上报：每条被拒绝的命令/失败的操作只打一条日志。
// 通过最小 provider 接口提取错误元信息，避免 logx 与具体错误模型耦合。

type codeTextProvider interface {
	CodeText() string
}

type msgProvider interface {
	Msg() string
}

type dataProvider interface {
	Data() map[string]any
}

type stackProvider interface {
	Stack() []uintptr
}

// ReportError 打印一次错误：
// - 携带错误码但没有栈（业务拒绝）→ Warn，带 code 与上下文字段
// - 其余（系统错误、裸 error）→ Error，附带 cause 链与发生处
func ReportError(l Logger, err error, fields ...zap.Field) {
	if err == nil || l == nil {
		return
	}

	msg := err.Error()
	var mp msgProvider
	if errors.As(err, &mp) && mp.Msg() != "" {
		msg = mp.Msg()
	}

	base := make([]zap.Field, 0, len(fields)+3)
	isBiz := false
	var cp codeTextProvider
	if errors.As(err, &cp) && cp.CodeText() != "" {
		base = append(base, zap.String("code", cp.CodeText()))
		isBiz = true
	}
	var dp dataProvider
	if errors.As(err, &dp) {
		if d := dp.Data(); len(d) != 0 {
			base = append(base, zap.Any("detail", d))
		}
	}
	var sp stackProvider
	if errors.As(err, &sp) && len(sp.Stack()) != 0 {
		isBiz = false
		base = append(base, zap.String("origin", originOf(sp.Stack())))
	}
	base = append(base, fields...)

	if isBiz {
		l.Warn(msg, base...)
		return
	}
	if chain := causeChain(err, 10); len(chain) != 0 {
		base = append(base, zap.Any("cause_chain", chain))
	}
	l.Error(msg, base...)
}

func causeChain(err error, maxDepth int) []string {
	out := make([]string, 0, 4)
	cur := errors.Unwrap(err)
	for i := 0; i < maxDepth && cur != nil; i++ {
		out = append(out, fmt.Sprintf("%T: %v", cur, cur))
		cur = errors.Unwrap(cur)
	}
	return out
}

func originOf(pcs []uintptr) string {
	frames := runtime.CallersFrames(pcs)
	f, _ := frames.Next()
	if f.Function == "" && f.File == "" {
		return ""
	}
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}
