package config

import "time"

// Source names reported by ConfigProvider.Source.
const (
	SourceEnvironment = "environment"
	SourceXML         = "xml"
	SourceYAML        = "yaml"
	SourceEnv         = "env"
)

// UseEnvironmentVariable switches the loader to process environment only.
// Both spellings are honoured.
const (
	UseEnvironmentVariable       = "useEnvironmentVariables"
	UseEnvironmentVariablePrefix = "GNOSS_USE_ENVIRONMENT_VARIABLES"
)

// Options configures the config loader. Sources are exclusive: the first
// one available wins, in the order environment, XML, YAML, .env.
type Options struct {
	// UseEnvironment forces environment mode. It is also enabled by the
	// useEnvironmentVariables process variable.
	UseEnvironment bool

	// XMLPath points to a gnoss.config.xml file.
	XMLPath string

	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file.
	EnvPath string
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetFloat64(key string) float64
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}

	// IsSet checks whether the key is set in the active source.
	IsSet(key string) bool

	AllSettings() map[string]interface{}

	// WatchChanges starts watching the config file for changes (YAML only).
	// Non-blocking: spawns a background goroutine.
	WatchChanges()

	// OnChange registers a callback that fires after a successful reload.
	// Callbacks execute in registration order.
	OnChange(fn func())

	StopWatching()

	// Source returns the active source, one of the Source constants.
	Source() string
}
