package nbtsync

import (
	"fmt"
	"reflect"
)

// TypeHandler converts values of one type to and from a compound bag.
type TypeHandler struct {
	// Type is the field type the handler serves
	Type reflect.Type
	// Load builds a value from the compound stored under the field's key.
	// It receives an empty bag if the key is missing.
	Load func(Bag) any
	// Save writes a value into a fresh compound stored under the field's key.
	Save func(Bag, any)
}

// Registry maps value types to handlers. It is consulted for field types
// that are not built-in primitives, Lazy or Serializable.
//
// A registry is populated during initialization and then frozen. Register is
// not safe for concurrent use; a frozen registry is read-only and may be shared
// by any number of goroutines.
type Registry struct {
	handlers map[reflect.Type]*TypeHandler
	// order holds types in first-registration order for diagnostics
	order  []reflect.Type
	frozen bool
}

// NewRegistry creates an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[reflect.Type]*TypeHandler)}
}

// Register adds a handler for t. A later registration for the same type
// replaces the earlier one.
func (r *Registry) Register(t reflect.Type, load func(Bag) any, save func(Bag, any)) error {
	if r.frozen {
		return fmt.Errorf("nbtsync: register %v: %w", t, ErrRegistryFrozen)
	}
	if t == nil {
		return fmt.Errorf("nbtsync: register: nil type")
	}
	if load == nil || save == nil {
		return fmt.Errorf("nbtsync: register %v: load and save must both be set", t)
	}

	if _, ok := r.handlers[t]; !ok {
		r.order = append(r.order, t)
	}
	r.handlers[t] = &TypeHandler{Type: t, Load: load, Save: save}
	return nil
}

// Register adds a typed handler for T to r.
//
// Usage:
//
//	nbtsync.Register(reg,
//	    func(b nbtsync.Bag) Color { return Color(b.Int32("rgb")) },
//	    func(b nbtsync.Bag, c Color) { b.PutInt32("rgb", int32(c)) },
//	)
func Register[T any](r *Registry, load func(Bag) T, save func(Bag, T)) error {
	if load == nil || save == nil {
		return fmt.Errorf("nbtsync: register %v: load and save must both be set", typeOf[T]())
	}
	return r.Register(typeOf[T](),
		func(b Bag) any { return load(b) },
		func(b Bag, v any) {
			t, _ := v.(T)
			save(b, t)
		},
	)
}

// Lookup returns the handler registered for t.
func (r *Registry) Lookup(t reflect.Type) (*TypeHandler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.handlers[t]
	return h, ok
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Types returns the registered types in first-registration order.
func (r *Registry) Types() []reflect.Type {
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// typeOf returns the reflect.Type of T, including interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
