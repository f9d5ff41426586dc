package nbtsync

import (
	"fmt"
	"reflect"
	"slices"
)

// TypeMeta holds pre-computed metadata about a synchronized type.
// This is computed once per type and reused for every Load and Store.
type TypeMeta struct {
	// Type is the reflect.Type of the struct (or schema subject)
	Type reflect.Type

	// Name is the type name for logging
	Name string

	// Fields holds synchronization metadata, outer fields before the fields of
	// embedded structs
	Fields []FieldMeta
}

// FieldMeta holds metadata about a single synchronized field.
type FieldMeta struct {
	// Name is the Go field name, dotted through embedded structs
	Name string

	// Key is the bag key
	Key string

	// Modes are the operations the field participates in
	Modes Modes

	// Type is the field's type
	Type reflect.Type

	// Kind is the static conversion kind. KindHandler is resolved against the
	// registry on every call.
	Kind FieldKind

	// Index is the reflect field index path for struct tag fields
	Index []int

	load  func(obj reflect.Value, b Bag, reg *Registry) error
	store func(obj reflect.Value, b Bag, reg *Registry) error
}

// Field returns the field with the given key.
func (m *TypeMeta) Field(key string) (*FieldMeta, bool) {
	for i := range m.Fields {
		if m.Fields[i].Key == key {
			return &m.Fields[i], true
		}
	}
	return nil, false
}

// Keys returns the keys that participate in mode, in field order.
func (m *TypeMeta) Keys(mode Mode) []string {
	var keys []string
	for _, f := range m.Fields {
		if f.Modes.Has(mode) {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// validate rejects duplicate keys.
func (m *TypeMeta) validate() error {
	seen := make(map[string]string, len(m.Fields))
	for _, f := range m.Fields {
		if prev, ok := seen[f.Key]; ok {
			return fmt.Errorf("nbtsync: %s: key %q used by both %s and %s", m.Name, f.Key, prev, f.Name)
		}
		seen[f.Key] = f.Name
	}
	return nil
}

// analyzeType analyzes a struct type and returns its metadata.
func analyzeType(t reflect.Type) (*TypeMeta, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("nbtsync: %v: %w", t, ErrNotStruct)
	}

	meta := &TypeMeta{
		Type: t,
		Name: typeName(t),
	}
	if err := analyzeFields(meta, t, nil, "", map[reflect.Type]bool{t: true}); err != nil {
		return nil, err
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}
	return meta, nil
}

// analyzeFields appends the tagged fields of t to meta. Untagged embedded
// structs are walked after the fields declared directly on t.
func analyzeFields(meta *TypeMeta, t reflect.Type, index []int, prefix string, visiting map[reflect.Type]bool) error {
	var embedded []reflect.StructField

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, err := parseTag(string(field.Tag))
		if err != nil {
			return fmt.Errorf("nbtsync: %s.%s%s: %w", meta.Name, prefix, field.Name, err)
		}

		if tag.Ignored {
			if field.Anonymous && field.Tag.Get(tagName) != tagIgnore && isStructOrPtrStruct(field.Type) {
				embedded = append(embedded, field)
			}
			continue
		}

		if !field.IsExported() {
			return fmt.Errorf("nbtsync: %s.%s%s: tagged field must be exported", meta.Name, prefix, field.Name)
		}

		path := append(slices.Clone(index), i)
		meta.Fields = append(meta.Fields, structField(prefix+field.Name, tag, field.Type, path))
	}

	// Check embedded structs last so their fields follow the outer ones
	for _, field := range embedded {
		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if visiting[ft] {
			continue
		}
		visiting[ft] = true
		path := append(slices.Clone(index), field.Index...)
		if err := analyzeFields(meta, ft, path, prefix+field.Name+".", visiting); err != nil {
			return err
		}
		delete(visiting, ft)
	}

	return nil
}

// structField builds the metadata of a tagged struct field reached through index.
func structField(name string, tag TagInfo, ft reflect.Type, index []int) FieldMeta {
	kind := classify(ft)
	key := tag.Key

	return FieldMeta{
		Name:  name,
		Key:   key,
		Modes: tag.Modes,
		Type:  ft,
		Kind:  kind,
		Index: index,
		load: func(obj reflect.Value, b Bag, reg *Registry) error {
			fv, err := obj.Elem().FieldByIndexErr(index)
			if err != nil {
				return err
			}
			return loadValue(fv, kind, b, key, reg)
		},
		store: func(obj reflect.Value, b Bag, reg *Registry) error {
			fv, err := obj.Elem().FieldByIndexErr(index)
			if err != nil {
				return err
			}
			return storeValue(fv, kind, b, key, reg)
		},
	}
}

func isStructOrPtrStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
