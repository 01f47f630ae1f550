package table

import (
	"errors"
	"fmt"
)

// Column definition errors
var (
	ErrEmptyKey     = errors.New("column key cannot be empty")
	ErrDuplicateKey = errors.New("column key is already defined")
	ErrNoSortSource = errors.New("sortable column has no sort key, sort value, render function or field")
)

// ConfigurationError reports an invalid column definition.
// It is returned when a table is constructed and is never recovered from internally.
type ConfigurationError struct {
	Column string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("table configuration: %v", e.Err)
	}
	return fmt.Sprintf("table configuration: column %q: %v", e.Column, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
