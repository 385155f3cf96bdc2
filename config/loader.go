package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVROUTE_"

// Loader reads the config file, applies environment overrides and watches
// the file for changes.
type Loader struct {
	path    string
	envFile string
	log     *zap.Logger

	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvFile loads path as a .env file before reading the environment.
// A missing file is not an error.
func WithEnvFile(path string) Option {
	return func(l *Loader) { l.envFile = path }
}

// WithLogger sets the logger used for reload events.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a Loader and performs the initial load. An empty path
// skips the file and uses Default() plus the environment.
func NewLoader(path string, opts ...Option) (*Loader, error) {
	l := &Loader{path: path, log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load env file %s: %w", l.envFile, err)
		}
	}

	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// Config returns the current configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers fn to run after every successful reload.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file and notifies OnChange callbacks. On error the
// current configuration is kept.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// Watch reloads the config whenever the file is written or recreated, until
// stop is called. Invalid edits are logged and the previous config stays.
func (l *Loader) Watch() (stop func(), err error) {
	if l.path == "" {
		return func() {}, nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watcher: %w", err)
	}
	if err = w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, err := l.Reload(); err != nil {
					l.log.Warn("config reload failed, keeping previous", zap.String("path", l.path), zap.Error(err))
					continue
				}
				l.log.Info("config reloaded", zap.String("path", l.path))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.Warn("config watcher error", zap.Error(err))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

func (l *Loader) load() (*Config, error) {
	cfg := Default()
	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", l.path, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", l.path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays LVROUTE_* variables onto cfg.
func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"GRAPH_FILE":    &cfg.Graph.File,
		"SESSION_MODE":  &cfg.Session.Mode,
		"LOG_LEVEL":     &cfg.Log.Level,
		"LOG_FORMAT":    &cfg.Log.Format,
		"RENDER_LAYOUT": &cfg.Render.Layout,
		"RENDER_OUTPUT": &cfg.Render.Output,
		"METRICS_ADDR":  &cfg.Metrics.Addr,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"RENDER_ENABLED":  &cfg.Render.Enabled,
		"METRICS_ENABLED": &cfg.Metrics.Enabled,
	}
	for key, dst := range bools {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, EnvPrefix, key, v)
		}
		*dst = b
	}

	return nil
}
