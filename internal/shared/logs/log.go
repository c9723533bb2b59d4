package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"VillageIdle/internal/shared/gamecfg"
)

// 本包是整个游戏的"可观测通道"：所有对操作者的回应（确认、报错、每 tick 的
// 资源增量）都走这里，同时落到控制台和带切割的日志文件。

var (
	logger      = zap.NewNop()
	atomicLevel = zap.NewAtomicLevel()
)

func Init(appName string, cfg gamecfg.LogConfig) error {
	// 1) 日志级别：解析失败回退 info；AtomicLevel 便于热更新时动态调整
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	atomicLevel.SetLevel(lvl)

	// 2) console 和 file 共用的编码器配置（字段名、ISO8601 时间戳、caller）
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// 3) 控制台彩色输出，方便交互时肉眼看
	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleCfg)

	// 4) 文件走 JSON 结构化输出（不带颜色，避免 ANSI 转义进文件）
	fileCfg := encoderCfg
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	jsonEncoder := zapcore.NewJSONEncoder(fileCfg)

	// 5) 文件输出用 lumberjack 切割：超过 MaxSize(MB) 改名备份，
	//    最多保留 MaxBackups 代旧文件，磁盘占用有界
	var fileWriter io.Writer
	if cfg.FileDir != "" {
		fileWriter = &lumberjack.Logger{
			Filename:   cfg.FileDir,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
	} else {
		fileWriter = io.Discard
	}

	// 6) 同一条日志写两路：控制台 + 文件
	consoleSyncer := zapcore.Lock(os.Stderr)
	fileSyncer := zapcore.AddSync(fileWriter)

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(consoleSyncer, fileSyncer), atomicLevel)
	if cfg.FileDir != "" {
		core = zapcore.NewTee(
			zapcore.NewCore(consoleEncoder, consoleSyncer, atomicLevel),
			zapcore.NewCore(jsonEncoder, fileSyncer, atomicLevel),
		)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	logger = zap.New(core, opts...).Named(appName)
	return nil
}

// Logger 返回底层 zap.Logger，便于注入需要 logx.Logger 的模块。
func Logger() *zap.Logger {
	return logger
}

// SetLevel 动态调整日志级别（配置热更新用），解析失败保持原级别。
func SetLevel(level string) {
	lvl := atomicLevel.Level()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return
	}
	atomicLevel.SetLevel(lvl)
}

// Sync 把缓冲中的日志刷盘（进程退出前调用）。
func Sync() {
	_ = logger.Sync()
}

// 常用级别的便捷封装：logger 恒非 nil（初始为 Nop），直接转发即可。

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Fatal 输出 Fatal 日志后退出进程（os.Exit(1)），只用于启动门槛类错误。
func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
