package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var _ ConfigProvider = (*viperConfig)(nil)

type viperConfig struct {
	v         *viper.Viper
	source    string
	callbacks []func()
	mu        sync.RWMutex
	done      chan struct{}
}

// Init selects the first available source and loads it. It fails when no
// source is available or the selected one cannot be parsed.
func Init(opts Options) (ConfigProvider, error) {
	v := viper.New()
	cfg := &viperConfig{
		v:    v,
		done: make(chan struct{}),
	}

	switch {
	case opts.UseEnvironment || environmentRequested():
		cfg.source = SourceEnvironment
		bindEnvironment(v)
		return cfg, nil
	case fileExists(opts.XMLPath):
		values, err := readXML(opts.XMLPath)
		if err != nil {
			return nil, err
		}
		cfg.source = SourceXML
		bindEnvironment(v)
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("config: failed to load xml values: %w", err)
		}
		return cfg, nil
	case fileExists(opts.YAMLPath):
		v.SetConfigFile(opts.YAMLPath)
		v.SetConfigType("yaml")
		cfg.source = SourceYAML
	case fileExists(opts.EnvPath):
		v.SetConfigFile(opts.EnvPath)
		v.SetConfigType("env")
		cfg.source = SourceEnv
	default:
		return nil, fmt.Errorf("config: no config source found (tried environment, %q, %q and %q)",
			opts.XMLPath, opts.YAMLPath, opts.EnvPath)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s file: %w", cfg.source, err)
	}

	return cfg, nil
}

func environmentRequested() bool {
	for _, name := range []string{UseEnvironmentVariable, UseEnvironmentVariablePrefix} {
		if strings.EqualFold(strings.TrimSpace(os.Getenv(name)), "true") {
			return true
		}
	}
	return false
}

// bindEnvironment exposes the process environment under the canonical keys.
// redis.host reads REDIS_HOST, and the legacy GNOSS names are bound
// explicitly since they do not follow that convention.
func bindEnvironment(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnvNames {
		_ = v.BindEnv(key, envKey(key), legacy)
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// read evaluates get under the read lock so lookups never observe a reload
// in progress.
func read[T any](c *viperConfig, get func(*viper.Viper) T) T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return get(c.v)
}

func (c *viperConfig) GetString(key string) string {
	return read(c, func(v *viper.Viper) string { return v.GetString(key) })
}

func (c *viperConfig) GetInt(key string) int {
	return read(c, func(v *viper.Viper) int { return v.GetInt(key) })
}

func (c *viperConfig) GetBool(key string) bool {
	return read(c, func(v *viper.Viper) bool { return v.GetBool(key) })
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	return read(c, func(v *viper.Viper) time.Duration { return v.GetDuration(key) })
}

func (c *viperConfig) GetFloat64(key string) float64 {
	return read(c, func(v *viper.Viper) float64 { return v.GetFloat64(key) })
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return read(c, func(v *viper.Viper) []string { return v.GetStringSlice(key) })
}

func (c *viperConfig) GetStringMap(key string) map[string]interface{} {
	return read(c, func(v *viper.Viper) map[string]interface{} { return v.GetStringMap(key) })
}

func (c *viperConfig) IsSet(key string) bool {
	return read(c, func(v *viper.Viper) bool { return v.IsSet(key) })
}

func (c *viperConfig) AllSettings() map[string]interface{} {
	return read(c, (*viper.Viper).AllSettings)
}

func (c *viperConfig) Source() string { return c.source }

func (c *viperConfig) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, fn)
}

// WatchChanges reloads YAML and dotenv sources when the file is rewritten.
// XML and environment sources are fixed for the life of the process.
func (c *viperConfig) WatchChanges() {
	if c.source != SourceYAML && c.source != SourceEnv {
		return
	}

	c.v.OnConfigChange(func(e fsnotify.Event) {
		if c.stopped() || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}

		c.mu.Lock()
		err := c.v.ReadInConfig()
		callbacks := append([]func(){}, c.callbacks...)
		c.mu.Unlock()
		if err != nil {
			return
		}

		for _, fn := range callbacks {
			fn()
		}
	})
	c.v.WatchConfig()
}

// StopWatching silences reload callbacks. viper offers no way to remove its
// file watcher, so events after this call are dropped.
func (c *viperConfig) StopWatching() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

func (c *viperConfig) stopped() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
