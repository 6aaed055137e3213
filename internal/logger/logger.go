package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New собирает SugaredLogger с заданным уровнем.
// development включает человекочитаемый консольный вывод, иначе JSON.
// Пустой или неизвестный уровень трактуется как fallback.
func New(level, fallback string, development bool, outputs ...string) (*zap.SugaredLogger, error) {
	lvl := zapcore.InfoLevel
	// zap принимает "" как info, поэтому пустой уровень проверяем отдельно
	level = strings.TrimSpace(level)
	if level == "" {
		level = fallback
	}
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		if err := lvl.Set(strings.ToLower(fallback)); err != nil {
			lvl = zapcore.InfoLevel
		}
	}
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = outputs
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
