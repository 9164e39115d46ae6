package settings

// Service provides read access to system-wide properties.
type Service interface {
	LoadSettings() error

	// GetBool returns the boolean property registered under name, or
	// defaultVal when the property is absent or not interpretable as a
	// boolean.
	GetBool(name string, defaultVal bool) bool
}
