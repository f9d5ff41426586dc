package nbtsync

import (
	"reflect"
)

// Serializable is implemented by values that describe their own NBT form.
// SerializeNBT returns any tag value (usually map[string]any); DeserializeNBT
// receives the value stored under the field's key.
//
// Usage:
//
//	type Inventory struct{ Items []string }
//
//	func (i *Inventory) SerializeNBT() any {
//	    b := nbtsync.NewBag()
//	    ...
//	    return map[string]any(b)
//	}
//
//	func (i *Inventory) DeserializeNBT(data any) { ... }
type Serializable interface {
	SerializeNBT() any
	DeserializeNBT(data any)
}

// Lazy is an optional Serializable whose value is supplied on first use.
// Loading deserializes into the present value in place; storing writes the
// present value. An absent value is skipped in both directions.
//
// Usage:
//
//	type Furnace struct {
//	    Fuel nbtsync.Lazy[*Inventory] `nbt:"Fuel"`
//	}
//
//	f := &Furnace{Fuel: nbtsync.NewLazy(func() *Inventory { return &Inventory{} })}
//
// A Lazy must not be copied after first use.
type Lazy[T Serializable] struct {
	supplier func() T
	value    T
	resolved bool
	present  bool
}

// NewLazy returns a Lazy that calls supplier once, on first access.
func NewLazy[T Serializable](supplier func() T) Lazy[T] {
	return Lazy[T]{supplier: supplier}
}

// LazyOf returns a Lazy that is already resolved to v.
func LazyOf[T Serializable](v T) Lazy[T] {
	return Lazy[T]{value: v, resolved: true, present: true}
}

// EmptyLazy returns a Lazy with no value.
func EmptyLazy[T Serializable]() Lazy[T] {
	return Lazy[T]{resolved: true}
}

func (l *Lazy[T]) resolve() {
	if l.resolved {
		return
	}
	l.resolved = true
	if l.supplier == nil {
		return
	}
	l.value = l.supplier()
	l.present = !isNil(reflect.ValueOf(&l.value).Elem())
}

// Get returns the value and whether it is present.
func (l *Lazy[T]) Get() (T, bool) {
	l.resolve()
	return l.value, l.present
}

// IsPresent reports whether the Lazy holds a value.
func (l *Lazy[T]) IsPresent() bool {
	l.resolve()
	return l.present
}

// IfPresent calls fn with the value if there is one.
func (l *Lazy[T]) IfPresent(fn func(T)) {
	if v, ok := l.Get(); ok {
		fn(v)
	}
}

// Invalidate drops the value. The Lazy stays absent from then on.
func (l *Lazy[T]) Invalidate() {
	var zero T
	l.value = zero
	l.supplier = nil
	l.resolved = true
	l.present = false
}

func (l *Lazy[T]) serializable() (Serializable, bool) {
	v, ok := l.Get()
	if !ok {
		return nil, false
	}
	return v, true
}

// lazySerializable is implemented by *Lazy[T] for every T.
type lazySerializable interface {
	serializable() (Serializable, bool)
}

var (
	serializableType = reflect.TypeOf((*Serializable)(nil)).Elem()
	lazyType         = reflect.TypeOf((*lazySerializable)(nil)).Elem()
)

// isLazyType checks if a field type is Lazy[T] or *Lazy[T].
func isLazyType(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr && t.Implements(lazyType) {
		return true
	}
	return t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(lazyType)
}

// isSerializableType checks if a field type, or a pointer to it, implements
// Serializable.
func isSerializableType(t reflect.Type) bool {
	return t.Implements(serializableType) || reflect.PointerTo(t).Implements(serializableType)
}

// lazyFrom returns the lazySerializable behind an addressable field value.
// It returns nil for a nil *Lazy[T].
func lazyFrom(v reflect.Value) lazySerializable {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		return v.Interface().(lazySerializable)
	}
	return v.Addr().Interface().(lazySerializable)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
