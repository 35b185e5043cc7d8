package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger and installs it as zap's global logger,
// which obs.Time writes through. format is "json" (default) or "console".
func New(level, format string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if strings.EqualFold(format, "console") {
		config = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: parse level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
