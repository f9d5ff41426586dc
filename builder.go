package nbtsync

import (
	"log/slog"
	"reflect"
)

// Builder configures an Engine before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	handlers []handlerRegistration
	schemas  []FieldSet
	logger   *slog.Logger
	strict   bool
	defaults bool
}

// handlerRegistration holds a type handler registration.
type handlerRegistration struct {
	typ  reflect.Type
	load func(Bag) any
	save func(Bag, any)
}

// NewBuilder creates a new engine builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Handler adds a type handler. Handlers are registered in the order they are
// added, so a later handler for the same type wins.
func (b *Builder) Handler(t reflect.Type, load func(Bag) any, save func(Bag, any)) *Builder {
	b.handlers = append(b.handlers, handlerRegistration{t, load, save})
	return b
}

// Schema adds an explicit field set, used instead of struct tags for its type.
func (b *Builder) Schema(fs FieldSet) *Builder {
	b.schemas = append(b.schemas, fs)
	return b
}

// Logger sets the logger field failures are reported to.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Strict makes the engine stop at the first field error.
func (b *Builder) Strict() *Builder {
	b.strict = true
	return b
}

// Defaults registers the handlers of RegisterDefaults before any added with
// Handler.
func (b *Builder) Defaults() *Builder {
	b.defaults = true
	return b
}

// Init builds the registry, freezes it, and returns the engine.
// It panics if a handler or schema is invalid, as that is a programming error.
func (b *Builder) Init() *Engine {
	reg := NewRegistry()

	if b.defaults {
		if err := RegisterDefaults(reg); err != nil {
			panic("nbtsync: failed to register default handlers: " + err.Error())
		}
	}
	for _, h := range b.handlers {
		if err := reg.Register(h.typ, h.load, h.save); err != nil {
			panic("nbtsync: failed to register handler: " + err.Error())
		}
	}
	reg.Freeze()

	opts := []Option{WithLogger(b.logger)}
	if b.strict {
		opts = append(opts, WithStrict())
	}
	e := NewEngine(reg, opts...)

	for _, fs := range b.schemas {
		if err := e.Use(fs); err != nil {
			panic("nbtsync: failed to build schema: " + err.Error())
		}
	}

	return e
}

// TypedHandler adds a type handler for T to b.
//
// Usage:
//
//	nbtsync.TypedHandler(builder,
//	    func(b nbtsync.Bag) Color { return Color(b.Int32("rgb")) },
//	    func(b nbtsync.Bag, c Color) { b.PutInt32("rgb", int32(c)) },
//	)
func TypedHandler[T any](b *Builder, load func(Bag) T, save func(Bag, T)) *Builder {
	var l func(Bag) any
	var s func(Bag, any)
	if load != nil {
		l = func(bag Bag) any { return load(bag) }
	}
	if save != nil {
		s = func(bag Bag, v any) {
			t, _ := v.(T)
			save(bag, t)
		}
	}
	return b.Handler(typeOf[T](), l, s)
}
