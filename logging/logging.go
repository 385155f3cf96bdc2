// Package logging builds the zap logger shared by every lvroute component.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvroute/config"
)

// ParseLevel maps a config level name to a zap level. Unknown names are an error.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel, nil
	case "info", "":
		return zap.InfoLevel, nil
	case "warn":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
}

// New builds a logger from cfg. The returned AtomicLevel controls the
// logger's level after construction; pass it to Follow for hot reload.
//
// "console" selects zap's development encoder, anything else JSON.
// Output goes to stderr so it never mixes with session output on stdout.
func New(cfg config.LogConfig) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	var zc zap.Config
	if strings.EqualFold(cfg.Format, "console") {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	log, err := zc.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("logging: build: %w", err)
	}

	return log, zc.Level, nil
}

// Follow registers a config callback that applies Log.Level changes to level.
// Invalid levels are logged and ignored.
func Follow(loader *config.Loader, level zap.AtomicLevel, log *zap.Logger) {
	loader.OnChange(func(c *config.Config) {
		lvl, err := ParseLevel(c.Log.Level)
		if err != nil {
			log.Warn("ignoring log level change", zap.Error(err))
			return
		}
		if lvl != level.Level() {
			level.SetLevel(lvl)
			log.Info("log level changed", zap.Stringer("level", lvl))
		}
	})
}
