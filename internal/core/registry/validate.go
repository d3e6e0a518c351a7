package registry

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError lists the fields that are missing or malformed.
// A draft failing validation is never committed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Check accumulates field-level validation failures for a draft record.
type Check struct {
	fields []string
}

// Require marks the field as missing when its value is blank.
func (c *Check) Require(name, value string) {
	if strings.TrimSpace(value) == "" {
		c.fields = append(c.fields, name)
	}
}

// RequireTime marks the field as missing when the time is the zero value.
func (c *Check) RequireTime(name string, t time.Time) {
	if t.IsZero() {
		c.fields = append(c.fields, name)
	}
}

// Field marks the field as invalid when ok is false.
// Used for format checks on fields that are already present.
func (c *Check) Field(name string, ok bool) {
	if !ok {
		c.fields = append(c.fields, name)
	}
}

// Err returns a ValidationError listing every failed field, or nil.
func (c *Check) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}
