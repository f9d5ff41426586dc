package nbtsync

import (
	"maps"
	"math"
	"slices"
)

// Bag is a compound tag: a string keyed mapping of NBT values.
//
// Values use the representation produced by the nbt decoder and expected by
// Dragonfly's world.NBTer:
//
//	TAG_Byte     uint8
//	TAG_Short    int16
//	TAG_Int      int32
//	TAG_Long     int64
//	TAG_Float    float32
//	TAG_Double   float64
//	TAG_String   string
//	TAG_List     []any
//	TAG_Compound map[string]any
//
// Typed getters never fail. Numeric getters accept any numeric tag and
// convert it to the requested width. A missing key, or a key holding a
// non-numeric value, yields the zero value. String and Compound only accept
// their own tag type.
type Bag map[string]any

// NewBag returns an empty bag.
func NewBag() Bag {
	return make(Bag)
}

// Has reports whether key is present.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Get returns the raw value stored under key, or nil.
func (b Bag) Get(key string) any {
	return b[key]
}

// Put stores a raw value under key. Nested bags are stored as map[string]any.
func (b Bag) Put(key string, v any) {
	if nested, ok := v.(Bag); ok {
		v = map[string]any(nested)
	}
	b[key] = v
}

// Remove deletes key.
func (b Bag) Remove(key string) {
	delete(b, key)
}

// Keys returns the keys in sorted order.
func (b Bag) Keys() []string {
	return slices.Sorted(maps.Keys(b))
}

// Int32 returns the numeric tag under key as an int32.
func (b Bag) Int32(key string) int32 {
	return int32(b.integer(key))
}

// Float32 returns the numeric tag under key as a float32.
func (b Bag) Float32(key string) float32 {
	return float32(b.float(key))
}

// String returns the TAG_String under key.
func (b Bag) String(key string) string {
	v, _ := b[key].(string)
	return v
}

// Bool returns true if the numeric tag under key is non-zero.
func (b Bag) Bool(key string) bool {
	return b.float(key) != 0
}

// Float64 returns the numeric tag under key as a float64.
func (b Bag) Float64(key string) float64 {
	return b.float(key)
}

// Int64 returns the numeric tag under key as an int64.
func (b Bag) Int64(key string) int64 {
	return b.integer(key)
}

// Int16 returns the numeric tag under key as an int16.
func (b Bag) Int16(key string) int16 {
	return int16(b.integer(key))
}

// Int8 returns the numeric tag under key as a signed byte.
func (b Bag) Int8(key string) int8 {
	return int8(b.integer(key))
}

// integer reads any numeric tag as an int64. TAG_Byte is signed in the tag
// format, so uint8 values are sign extended. Floating point values are
// floored. Narrower results are truncated by the caller's conversion.
func (b Bag) integer(key string) int64 {
	switch v := b[key].(type) {
	case uint8:
		return int64(int8(v))
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float32:
		return int64(math.Floor(float64(v)))
	case float64:
		return int64(math.Floor(v))
	}
	return 0
}

// float reads any numeric tag as a float64.
func (b Bag) float(key string) float64 {
	switch v := b[key].(type) {
	case uint8:
		return float64(int8(v))
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// Compound returns the TAG_Compound under key. The returned bag aliases the
// stored map; an empty, detached bag is returned if there is none.
func (b Bag) Compound(key string) Bag {
	switch v := b[key].(type) {
	case map[string]any:
		return Bag(v)
	case Bag:
		return v
	}
	return NewBag()
}

// PutInt32 stores v as a TAG_Int.
func (b Bag) PutInt32(key string, v int32) { b[key] = v }

// PutFloat32 stores v as a TAG_Float.
func (b Bag) PutFloat32(key string, v float32) { b[key] = v }

// PutString stores v as a TAG_String.
func (b Bag) PutString(key string, v string) { b[key] = v }

// PutBool stores v as a TAG_Byte of 0 or 1.
func (b Bag) PutBool(key string, v bool) {
	var x uint8
	if v {
		x = 1
	}
	b[key] = x
}

// PutFloat64 stores v as a TAG_Double.
func (b Bag) PutFloat64(key string, v float64) { b[key] = v }

// PutInt64 stores v as a TAG_Long.
func (b Bag) PutInt64(key string, v int64) { b[key] = v }

// PutInt16 stores v as a TAG_Short.
func (b Bag) PutInt16(key string, v int16) { b[key] = v }

// PutInt8 stores v as a TAG_Byte.
func (b Bag) PutInt8(key string, v int8) { b[key] = uint8(v) }

// PutCompound stores v as a TAG_Compound.
func (b Bag) PutCompound(key string, v Bag) {
	if v == nil {
		v = NewBag()
	}
	b[key] = map[string]any(v)
}

// Clone returns a deep copy of the bag. Nested compounds and lists are copied;
// scalar values and arrays are copied by value.
func (b Bag) Clone() Bag {
	if b == nil {
		return nil
	}
	return Bag(cloneCompound(b))
}

func cloneCompound(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneCompound(v)
	case Bag:
		return cloneCompound(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}
