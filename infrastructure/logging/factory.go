// Package logging builds the zap logger: a rotating JSON file sink plus a
// human-readable console sink.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"lingua-proxy/infrastructure/config"
)

// New builds the logger from the logging config. The returned function
// flushes buffered entries and is called on shutdown.
func New(cfg *config.Logging) (*zap.SugaredLogger, func(), error) {
	level := parseLevel(cfg.GetLevel())

	cores := []zapcore.Core{consoleCore(cfg, level)}

	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.GetMaxSizeMB(),
			MaxBackups: cfg.GetMaxBackups(),
			MaxAge:     cfg.GetMaxAgeDays(),
			Compress:   cfg.Compress,
		}
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "ts"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(fileWriter),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	sugar := logger.Sugar()
	cleanup := func() {
		_ = logger.Sync()
	}
	return sugar, cleanup, nil
}

func consoleCore(cfg *config.Logging, level zapcore.Level) zapcore.Core {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	if useColor(cfg) {
		encoderCfg.EncodeLevel = colorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		level,
	)
}

func parseLevel(s string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}
