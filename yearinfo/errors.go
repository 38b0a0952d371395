package yearinfo

import "fmt"

// ConfigurationError is returned when the date utility cannot represent a
// year needed to build a Context. It is fatal for that year and must not be
// retried.
type ConfigurationError struct {
	Year int
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: year %d: %v", e.Year, e.Err)
	}
	return fmt.Sprintf("configuration: year %d", e.Year)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
