package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines the logger settings.
type Config struct {
	Level string `yaml:"level"`
	// File enables a rotated JSON log file next to stdout when set.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

// New creates a production zap logger writing JSON to stdout and,
// optionally, to a rotated file.
func New(cfg Config, serviceName string) (*zap.Logger, error) {
	level := zap.InfoLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	if cfg.File != "" {
		rotated := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    valueOr(cfg.MaxSizeMB, 100),
			MaxBackups: valueOr(cfg.MaxBackups, 3),
			MaxAge:     valueOr(cfg.MaxAgeDays, 30),
			Compress:   true,
			LocalTime:  true,
		})
		core = zapcore.NewTee(core, zapcore.NewCore(encoder, rotated, level))
	}
	return zap.New(core, zap.AddCaller()).With(zap.String("service", serviceName)), nil
}

func valueOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
