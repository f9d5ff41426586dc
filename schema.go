package nbtsync

import (
	"fmt"
	"reflect"
)

// FieldSet is a source of type metadata that bypasses struct tag analysis.
type FieldSet interface {
	TypeMeta() (*TypeMeta, error)
}

// Schema declares the synchronized fields of T with typed accessors instead
// of struct tags. Fields are processed in declaration order.
//
// Usage:
//
//	schema := nbtsync.NewSchema[Furnace]().
//	    Int32("BurnTime", func(f *Furnace) *int32 { return &f.BurnTime }).
//	    String("CustomName", func(f *Furnace) *string { return &f.Name }, nbtsync.AllModes.Without(nbtsync.ModePacket)).
//	    Nested("Items", func(f *Furnace) nbtsync.Serializable { return f.Items })
//	nbtsync.Field(schema, "Owner", func(f *Furnace) *uuid.UUID { return &f.Owner })
//
//	engine.Use(schema)
type Schema[T any] struct {
	fields []FieldMeta
	err    error
}

// NewSchema creates an empty schema for T.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{}
}

// TypeMeta implements FieldSet.
func (s *Schema[T]) TypeMeta() (*TypeMeta, error) {
	if s.err != nil {
		return nil, s.err
	}
	t := typeOf[T]()
	meta := &TypeMeta{
		Type:   t,
		Name:   typeName(t),
		Fields: append([]FieldMeta(nil), s.fields...),
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return meta, nil
}

// Int32 adds a TAG_Int field.
func (s *Schema[T]) Int32(key string, access func(*T) *int32, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindInt32, access, Bag.Int32, Bag.PutInt32, modes)
}

// Float32 adds a TAG_Float field.
func (s *Schema[T]) Float32(key string, access func(*T) *float32, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindFloat32, access, Bag.Float32, Bag.PutFloat32, modes)
}

// String adds a TAG_String field.
func (s *Schema[T]) String(key string, access func(*T) *string, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindString, access, Bag.String, Bag.PutString, modes)
}

// Bool adds a boolean TAG_Byte field.
func (s *Schema[T]) Bool(key string, access func(*T) *bool, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindBool, access, Bag.Bool, Bag.PutBool, modes)
}

// Float64 adds a TAG_Double field.
func (s *Schema[T]) Float64(key string, access func(*T) *float64, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindFloat64, access, Bag.Float64, Bag.PutFloat64, modes)
}

// Int64 adds a TAG_Long field.
func (s *Schema[T]) Int64(key string, access func(*T) *int64, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindInt64, access, Bag.Int64, Bag.PutInt64, modes)
}

// Int16 adds a TAG_Short field.
func (s *Schema[T]) Int16(key string, access func(*T) *int16, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindInt16, access, Bag.Int16, Bag.PutInt16, modes)
}

// Int8 adds a TAG_Byte field.
func (s *Schema[T]) Int8(key string, access func(*T) *int8, modes ...Modes) *Schema[T] {
	return primitive(s, key, KindInt8, access, Bag.Int8, Bag.PutInt8, modes)
}

// Nested adds a Serializable field. The accessor must return a non-nil value
// for the field to be processed.
func (s *Schema[T]) Nested(key string, access func(*T) Serializable, modes ...Modes) *Schema[T] {
	if access == nil {
		s.fail(key, "nil accessor")
		return s
	}
	s.fields = append(s.fields, FieldMeta{
		Name:  key,
		Key:   key,
		Modes: modesOrAll(modes),
		Type:  serializableType,
		Kind:  KindSerializable,
		load: func(obj reflect.Value, b Bag, _ *Registry) error {
			data, ok := b[key]
			if !ok {
				return nil
			}
			v := access(subject[T](obj))
			if v == nil {
				return ErrNilValue
			}
			v.DeserializeNBT(data)
			return nil
		},
		store: func(obj reflect.Value, b Bag, _ *Registry) error {
			v := access(subject[T](obj))
			if v == nil {
				return ErrNilValue
			}
			b.Put(key, v.SerializeNBT())
			return nil
		},
	})
	return s
}

// Field adds a field of any type to s. The conversion follows the same
// dispatch as struct tag fields: primitives, Lazy, Serializable, then the
// engine's registry.
func Field[T, V any](s *Schema[T], key string, access func(*T) *V, modes ...Modes) *Schema[T] {
	if access == nil {
		s.fail(key, "nil accessor")
		return s
	}
	ft := typeOf[V]()
	kind := classify(ft)
	field := func(obj reflect.Value) (reflect.Value, error) {
		p := access(subject[T](obj))
		if p == nil {
			return reflect.Value{}, ErrNilValue
		}
		return reflect.ValueOf(p).Elem(), nil
	}
	s.fields = append(s.fields, FieldMeta{
		Name:  key,
		Key:   key,
		Modes: modesOrAll(modes),
		Type:  ft,
		Kind:  kind,
		load: func(obj reflect.Value, b Bag, reg *Registry) error {
			fv, err := field(obj)
			if err != nil {
				return err
			}
			return loadValue(fv, kind, b, key, reg)
		},
		store: func(obj reflect.Value, b Bag, reg *Registry) error {
			fv, err := field(obj)
			if err != nil {
				return err
			}
			return storeValue(fv, kind, b, key, reg)
		},
	})
	return s
}

// primitive adds a field whose conversion is fixed at declaration time.
func primitive[T, V any](
	s *Schema[T],
	key string,
	kind FieldKind,
	access func(*T) *V,
	get func(Bag, string) V,
	put func(Bag, string, V),
	modes []Modes,
) *Schema[T] {
	if access == nil {
		s.fail(key, "nil accessor")
		return s
	}
	s.fields = append(s.fields, FieldMeta{
		Name:  key,
		Key:   key,
		Modes: modesOrAll(modes),
		Type:  typeOf[V](),
		Kind:  kind,
		load: func(obj reflect.Value, b Bag, _ *Registry) error {
			p := access(subject[T](obj))
			if p == nil {
				return ErrNilValue
			}
			*p = get(b, key)
			return nil
		},
		store: func(obj reflect.Value, b Bag, _ *Registry) error {
			p := access(subject[T](obj))
			if p == nil {
				return ErrNilValue
			}
			put(b, key, *p)
			return nil
		},
	})
	return s
}

func (s *Schema[T]) fail(key, reason string) {
	if s.err == nil {
		s.err = fmt.Errorf("nbtsync: schema %s: field %q: %s", typeName(typeOf[T]()), key, reason)
	}
}

// subject unwraps the *T an engine passes to schema accessors.
func subject[T any](obj reflect.Value) *T {
	return obj.Interface().(*T)
}

func modesOrAll(modes []Modes) Modes {
	if len(modes) == 0 {
		return AllModes
	}
	var m Modes
	for _, mode := range modes {
		m |= mode
	}
	return m
}
