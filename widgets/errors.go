package widgets

import "fmt"

// ConfigError reports an unusable widget configuration, such as a missing
// data provider or an unknown CSS framework. It is returned synchronously
// from Render and is never retried.
type ConfigError struct {
	Widget string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("widgets: %s: %s", e.Widget, e.Reason)
}

func configErrorf(widget, format string, args ...any) *ConfigError {
	return &ConfigError{Widget: widget, Reason: fmt.Sprintf(format, args...)}
}
