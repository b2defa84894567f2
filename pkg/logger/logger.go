package logger

import (
	"deltadesk/conf"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 基于zap的全局日志，支持lumberjack日志切割

var std = newLogger(conf.LogConfig{Level: "info", Console: true})

// InitLogger 根据配置重建全局logger，main中加载配置后调用
func InitLogger(c conf.LogConfig) {
	std = newLogger(c)
}

// Default 返回全局zap实例，便于需要原生API的地方使用
func Default() *zap.Logger {
	return std
}

func newLogger(c conf.LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(c.Level); err != nil {
		level = zapcore.InfoLevel
	}

	timeFormat := c.TimeFormat
	if timeFormat == "" {
		timeFormat = "2006-01-02 15:04:05.000"
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeFormat))
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core
	if c.FileName != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.FileName,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
			LocalTime:  c.LocalTime,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, level))
	}
	if c.Console || c.FileName == "" {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
}

// Pair 构造一个结构化日志字段
func Pair(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

func Info(msg string, fields ...zap.Field) {
	std.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	std.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	std.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	std.Fatal(msg, fields...)
}

func Debugf(template string, args ...interface{}) {
	std.Sugar().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	std.Sugar().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	std.Sugar().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	std.Sugar().Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	std.Sugar().Fatalf(template, args...)
}

// Sync 进程退出前刷盘
func Sync() error {
	return std.Sync()
}
