package errors

import "fmt"

// ConfigError reports an invalid construction-time setting.
// It is returned immediately from constructors, never from calls.
type ConfigError struct {
	Field  string
	Reason string
}

var _ error = &ConfigError{}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}
