// Package nbtsync synchronizes struct fields with NBT compound tags.
//
// nbtsync provides:
//   - Declarative field tagging with per-mode participation (load, save, packet)
//   - Typed schemas as a tag-free alternative
//   - Bags shaped like Dragonfly's NBT maps, with host-style typed getters
//   - A frozen-after-init registry of handlers for custom value types
//   - Binary encoding in the Java, Bedrock disk and Bedrock network variants
//
// # Quick Start
//
// Build an engine once during server setup:
//
//	engine := nbtsync.NewBuilder().
//	    Defaults().
//	    Init()
//
// Tag the fields to synchronize:
//
//	type Furnace struct {
//	    BurnTime int32     `nbt:"BurnTime"`
//	    CookTime int32     `nbt:"CookTime,nopacket"`
//	    Name     string    `nbt:"CustomName,noload"`
//	    Owner    uuid.UUID `nbt:"Owner"`
//	}
//
//	data, err := engine.Store(f, nbtsync.NewBag(), nbtsync.ModeSave)
//	err = engine.Load(f, data)
//
// # Dispatch
//
// Field types are matched in this order, first match wins:
//
//	int32 float32 string bool float64 int64 int16 int8
//	Lazy[T]        optional Serializable
//	Serializable   self-describing nested value
//	registry       handler registered for the exact type
//
// Anything else fails with ErrUnsupportedType.
//
// # Failures
//
// A field that cannot be converted is logged, skipped and collected; the other
// fields are still processed and the joined errors are returned. Use
// WithStrict or Builder.Strict to stop at the first failure instead.
//
// # Tag Reference
//
//	nbt:"Key"            Loaded, saved and sent
//	nbt:"Key,noload"     Not loaded
//	nbt:"Key,nosave"     Not saved
//	nbt:"Key,nopacket"   Not sent in update packets
//	nbt:"-"              Ignored, also stops embedded struct traversal
package nbtsync

// Version is the nbtsync version.
const Version = "1.0.0"
