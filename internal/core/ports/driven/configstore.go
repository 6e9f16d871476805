package driven

// ConfigStore provides read access to file-based configuration.
// Keys use dot notation matching the TOML table layout (e.g. "server.base_url").
// Values keep the type they were decoded with; callers check types themselves.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// Path returns the configuration file path, or "" when no file is in use.
	Path() string
}
