package logs

import (
	"io"
	"os"
	"strings"

	"github.com/RafikBaaziz123/ConquEST/internal/shared/serverconfig"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger      = zap.NewNop()
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func Init(appName string, cfg serverconfig.LogConfig) error {
	// 级别解析失败回退到 info
	atomicLevel.SetLevel(parseLevel(cfg.Level))

	//    2026-01-28T10:00:00 INFO  world  match started  world_main.go:12
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

	// 控制台带颜色，文件输出 JSON
	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleCfg)

	fileCfg := encoderCfg
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	jsonEncoder := zapcore.NewJSONEncoder(fileCfg)

	consoleSyncer := zapcore.Lock(os.Stderr)

	// 没有配置文件路径时只输出到控制台
	var core zapcore.Core
	if cfg.FileDir != "" {
		var fileWriter io.Writer = &lumberjack.Logger{
			Filename:   cfg.FileDir,
			MaxSize:    max(1, cfg.MaxSize), // MB
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge), // days
			Compress:   cfg.Compress,
		}
		core = zapcore.NewTee(
			zapcore.NewCore(consoleEncoder, consoleSyncer, atomicLevel),
			zapcore.NewCore(jsonEncoder, zapcore.AddSync(fileWriter), atomicLevel),
		)
	} else {
		core = zapcore.NewCore(consoleEncoder, consoleSyncer, atomicLevel)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	// 替换前先把旧 logger 刷盘
	_ = logger.Sync()
	logger = zap.New(core, opts...).Named(appName)
	return nil
}

// Logger 返回当前 logger，给需要注入 *zap.Logger 的组件使用。
func Logger() *zap.Logger {
	return logger
}

// SetLevel 运行时调整级别，配置热更新时调用。返回是否真的发生了变化。
func SetLevel(level string) bool {
	next := parseLevel(level)
	if atomicLevel.Level() == next {
		return false
	}
	atomicLevel.SetLevel(next)
	return true
}

// Level 当前生效的级别。
func Level() zapcore.Level {
	return atomicLevel.Level()
}

func Sync() error {
	return logger.Sync()
}

func parseLevel(s string) zapcore.Level {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// 以下是对全局 logger 的便捷封装。

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info 示例：Info("match started", zap.String("world_id", id))
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// DPanic 开发模式下会直接 panic。
func DPanic(msg string, fields ...zap.Field) {
	logger.DPanic(msg, fields...)
}

func Panic(msg string, fields ...zap.Field) {
	logger.Panic(msg, fields...)
}

// Fatal 输出后 os.Exit(1)。
func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
