package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"gamecatalog/backend/internal/config"
)

// New builds the service logger. When LOG_FILE is set output goes to a
// rotating file instead of stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if cfg.LogEncoding == "console" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}

	if strings.TrimSpace(cfg.LogFile) != "" {
		return newFileLogger(cfg, level, encoderCfg, encoding), nil
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.LogDevelopment,
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zc.Build()
}

func newFileLogger(cfg *config.Config, level zapcore.Level, encoderCfg zapcore.EncoderConfig, encoding string) *zap.Logger {
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})

	var enc zapcore.Encoder
	if encoding == "console" {
		enc = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encoderCfg)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.LogDevelopment {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewCore(enc, w, level), opts...)
}
