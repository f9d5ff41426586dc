package nbtsync

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedType is returned for a tagged field whose type is neither a
	// built-in primitive, Serializable, Lazy, nor known to the registry.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrRegistryFrozen is returned when registering into a frozen registry.
	ErrRegistryFrozen = errors.New("registry is frozen")
	// ErrNotStruct is returned when the synchronized object is not a non-nil
	// pointer to a struct.
	ErrNotStruct = errors.New("object must be a non-nil pointer to a struct")
	// ErrNilValue is returned when a Serializable field holds nil and cannot be
	// allocated.
	ErrNilValue = errors.New("nil value")
)

// FieldError reports a failure to synchronize a single field.
type FieldError struct {
	// Type is the struct type the field belongs to
	Type reflect.Type
	// Field is the Go field name, or the key for schema fields
	Field string
	// Key is the bag key
	Key string
	// Mode is the operation that failed
	Mode Mode
	// Err is the underlying error
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("nbtsync: %s %s.%s (key %q): %v", e.Mode, typeName(e.Type), e.Field, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
