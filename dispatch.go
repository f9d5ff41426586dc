package nbtsync

import (
	"fmt"
	"reflect"
)

var (
	int32Type   = reflect.TypeOf(int32(0))
	float32Type = reflect.TypeOf(float32(0))
	stringType  = reflect.TypeOf("")
	boolType    = reflect.TypeOf(false)
	float64Type = reflect.TypeOf(float64(0))
	int64Type   = reflect.TypeOf(int64(0))
	int16Type   = reflect.TypeOf(int16(0))
	int8Type    = reflect.TypeOf(int8(0))
)

// classify returns the static kind of a field type. Primitives match on the
// exact predeclared type, so named types such as `type Level int32` fall
// through to Serializable or the registry. KindHandler means the registry is
// consulted when the field is synchronized.
func classify(t reflect.Type) FieldKind {
	switch t {
	case int32Type:
		return KindInt32
	case float32Type:
		return KindFloat32
	case stringType:
		return KindString
	case boolType:
		return KindBool
	case float64Type:
		return KindFloat64
	case int64Type:
		return KindInt64
	case int16Type:
		return KindInt16
	case int8Type:
		return KindInt8
	}
	if isLazyType(t) {
		return KindLazy
	}
	if isSerializableType(t) {
		return KindSerializable
	}
	return KindHandler
}

// loadValue assigns the value stored under key to the addressable field v.
func loadValue(v reflect.Value, kind FieldKind, b Bag, key string, reg *Registry) error {
	switch kind {
	case KindInt32:
		v.SetInt(int64(b.Int32(key)))
	case KindFloat32:
		v.SetFloat(float64(b.Float32(key)))
	case KindString:
		v.SetString(b.String(key))
	case KindBool:
		v.SetBool(b.Bool(key))
	case KindFloat64:
		v.SetFloat(b.Float64(key))
	case KindInt64:
		v.SetInt(b.Int64(key))
	case KindInt16:
		v.SetInt(int64(b.Int16(key)))
	case KindInt8:
		v.SetInt(int64(b.Int8(key)))
	case KindLazy:
		l := lazyFrom(v)
		if l == nil {
			return nil
		}
		s, ok := l.serializable()
		if !ok {
			return nil
		}
		if data, ok := b[key]; ok {
			s.DeserializeNBT(data)
		}
	case KindSerializable:
		data, ok := b[key]
		if !ok {
			return nil
		}
		s, err := serializableFrom(v, true)
		if err != nil {
			return err
		}
		s.DeserializeNBT(data)
	default:
		h, ok := reg.Lookup(v.Type())
		if !ok {
			return fmt.Errorf("don't know how to read %v from NBT: %w", v.Type(), ErrUnsupportedType)
		}
		res := h.Load(b.Compound(key))
		if res == nil {
			v.SetZero()
			return nil
		}
		rv := reflect.ValueOf(res)
		if !rv.Type().AssignableTo(v.Type()) {
			return fmt.Errorf("handler for %v returned %v", v.Type(), rv.Type())
		}
		v.Set(rv)
	}
	return nil
}

// storeValue writes the field v into b under key.
func storeValue(v reflect.Value, kind FieldKind, b Bag, key string, reg *Registry) error {
	switch kind {
	case KindInt32:
		b.PutInt32(key, int32(v.Int()))
	case KindFloat32:
		b.PutFloat32(key, float32(v.Float()))
	case KindString:
		b.PutString(key, v.String())
	case KindBool:
		b.PutBool(key, v.Bool())
	case KindFloat64:
		b.PutFloat64(key, v.Float())
	case KindInt64:
		b.PutInt64(key, v.Int())
	case KindInt16:
		b.PutInt16(key, int16(v.Int()))
	case KindInt8:
		b.PutInt8(key, int8(v.Int()))
	case KindLazy:
		l := lazyFrom(v)
		if l == nil {
			return nil
		}
		if s, ok := l.serializable(); ok {
			b.Put(key, s.SerializeNBT())
		}
	case KindSerializable:
		s, err := serializableFrom(v, false)
		if err != nil {
			return err
		}
		b.Put(key, s.SerializeNBT())
	default:
		h, ok := reg.Lookup(v.Type())
		if !ok {
			return fmt.Errorf("don't know how to write %v to NBT: %w", v.Type(), ErrUnsupportedType)
		}
		compound := NewBag()
		h.Save(compound, v.Interface())
		b.PutCompound(key, compound)
	}
	return nil
}

// serializableFrom returns the Serializable behind an addressable field value.
// With alloc set, a nil pointer field is replaced by a new zero value first.
func serializableFrom(v reflect.Value, alloc bool) (Serializable, error) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
	default:
		// Value fields go through their address so DeserializeNBT mutates
		// the field and not a copy.
		return v.Addr().Interface().(Serializable), nil
	}
	if isNil(v) {
		if !alloc || v.Kind() != reflect.Ptr {
			return nil, fmt.Errorf("%v field: %w", v.Type(), ErrNilValue)
		}
		v.Set(reflect.New(v.Type().Elem()))
	}
	return v.Interface().(Serializable), nil
}
