// Package logger writes structured logs to a file, since the terminal belongs to the UI.
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls logger setup.
type Config struct {
	Path  string
	Debug bool
}

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Setup installs a JSON file logger and returns a cleanup that flushes it and
// restores the no-op logger. On failure the no-op logger stays in place.
func Setup(cfg Config) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	opts := []zap.Option{}
	if cfg.Debug {
		level = zapcore.DebugLevel
		opts = append(opts, zap.AddCaller())
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)
	l := zap.New(core, opts...)

	mu.Lock()
	global = l
	mu.Unlock()

	l.Info("logger.initialized", zap.String("path", cfg.Path), zap.Bool("debug", cfg.Debug))

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		_ = global.Sync()
		global = zap.NewNop()
		return f.Close()
	}
	return cleanup, nil
}

// L returns the current logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
