package nbtsync

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
)

// Engine copies values between tagged fields and bags.
//
// Field failures are best-effort by default: each failing field is logged,
// skipped and collected, the remaining fields are still processed, and the
// collected errors are returned joined. WithStrict makes the first failing
// field abort the call instead. Neither mode rolls back fields or keys that
// were already written.
//
// Concurrency:
// Load and Store may be called from multiple goroutines once the engine's
// registry is no longer being written to.
type Engine struct {
	registry *Registry
	log      *slog.Logger
	strict   bool

	// metas maps reflect.Type to *TypeMeta
	metas sync.Map
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger field failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithStrict makes Load and Store stop at the first field error.
func WithStrict() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// NewEngine creates an engine using reg for non-primitive field types.
// A nil reg is replaced by an empty registry.
func NewEngine(reg *Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = NewRegistry()
	}
	e := &Engine{
		registry: reg,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's type handler registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Strict reports whether the engine stops at the first field error.
func (e *Engine) Strict() bool {
	return e.strict
}

// Use makes the engine take the fields of fs instead of analyzing struct
// tags for the same type.
func (e *Engine) Use(fs FieldSet) error {
	meta, err := fs.TypeMeta()
	if err != nil {
		return err
	}
	e.metas.Store(meta.Type, meta)
	return nil
}

// Meta returns the metadata for t, analyzing its struct tags on first use.
// Pointer types are resolved to their element type.
func (e *Engine) Meta(t reflect.Type) (*TypeMeta, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if m, ok := e.metas.Load(t); ok {
		return m.(*TypeMeta), nil
	}
	meta, err := analyzeType(t)
	if err != nil {
		return nil, err
	}
	actual, _ := e.metas.LoadOrStore(t, meta)
	return actual.(*TypeMeta), nil
}

// Load assigns every field of obj that participates in ModeLoad from b.
// obj must be a non-nil pointer. A nil bag behaves like an empty one.
func (e *Engine) Load(obj any, b Bag) error {
	if b == nil {
		b = NewBag()
	}
	return e.run(obj, ModeLoad, func(f *FieldMeta, v reflect.Value) error {
		return f.load(v, b, e.registry)
	})
}

// Store writes every field of obj that participates in mode into b and
// returns b. mode must be ModeSave or ModePacket. A nil bag is replaced by a
// new one. The bag is returned even when an error is.
func (e *Engine) Store(obj any, b Bag, mode Mode) (Bag, error) {
	if b == nil {
		b = NewBag()
	}
	if mode != ModeSave && mode != ModePacket {
		return b, fmt.Errorf("nbtsync: store: invalid mode %s", mode)
	}
	err := e.run(obj, mode, func(f *FieldMeta, v reflect.Value) error {
		return f.store(v, b, e.registry)
	})
	return b, err
}

// run applies op to every field of obj participating in mode.
func (e *Engine) run(obj any, mode Mode, op func(*FieldMeta, reflect.Value) error) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("nbtsync: %s %T: %w", mode, obj, ErrNotStruct)
	}
	meta, err := e.Meta(v.Type())
	if err != nil {
		return err
	}

	var errs []error
	for i := range meta.Fields {
		f := &meta.Fields[i]
		if !f.Modes.Has(mode) {
			continue
		}
		if err := op(f, v); err != nil {
			ferr := &FieldError{
				Type:  meta.Type,
				Field: f.Name,
				Key:   f.Key,
				Mode:  mode,
				Err:   err,
			}
			if e.strict {
				e.log.Warn("nbtsync: aborting at field",
					"type", meta.Name,
					"field", f.Name,
					"key", f.Key,
					"mode", mode.String(),
					"error", err)
				return ferr
			}
			e.log.Warn("nbtsync: skipping field",
				"type", meta.Name,
				"field", f.Name,
				"key", f.Key,
				"mode", mode.String(),
				"error", err)
			errs = append(errs, ferr)
		}
	}

	return errors.Join(errs...)
}
