package utils

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu  sync.RWMutex
	logger = zap.NewNop()
)

// InitLogger builds the process logger. format is "json" or "console".
func InitLogger(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(format, "console") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	SetLogger(l)
	return l, nil
}

func SetLogger(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

func Logger() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// LogEvent writes a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Logger().Info(message,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}

// LogWarn is LogEvent at warn level with the underlying error attached.
func LogWarn(requestID, module, action, message string, err error) {
	Logger().Warn(message,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
		zap.Error(err),
	)
}
