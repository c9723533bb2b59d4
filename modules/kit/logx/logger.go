package logx

import "go.uber.org/zap"

// Logger 是跨包可复用的最小日志接口。
//
// 约束：
// - 保持 API 极简，不搞自研日志框架
// - 只承载业务需要的能力：结构化字段输出
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// Nop 返回什么都不做的 Logger，测试里当占位用。
func Nop() Logger {
	return NewZapLogger(nil)
}
