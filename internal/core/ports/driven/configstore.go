package driven

// ConfigStore provides persistent host configuration.
type ConfigStore interface {
	// GetString retrieves a string value, empty when unset.
	GetString(key string) string

	// GetBool retrieves a boolean value, false when unset.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Path returns the configuration file path.
	Path() string
}
