package nbtsync

import (
	"fmt"
	"strings"

	"github.com/fatih/structtag"
)

// Tag constants
const (
	tagName   = "nbt"
	tagIgnore = "-"
)

// Tag modifiers
const (
	modNoLoad   = "noload"   // Skipped by Load
	modNoSave   = "nosave"   // Skipped by Store(ModeSave)
	modNoPacket = "nopacket" // Skipped by Store(ModePacket)
)

// FieldKind is the conversion a field is dispatched to. Kinds are listed in
// dispatch order: a type is matched against each in turn and the first match
// wins.
type FieldKind int

const (
	// KindInt32 indicates an int32 field stored as TAG_Int
	KindInt32 FieldKind = iota
	// KindFloat32 indicates a float32 field stored as TAG_Float
	KindFloat32
	// KindString indicates a string field stored as TAG_String
	KindString
	// KindBool indicates a bool field stored as TAG_Byte
	KindBool
	// KindFloat64 indicates a float64 field stored as TAG_Double
	KindFloat64
	// KindInt64 indicates an int64 field stored as TAG_Long
	KindInt64
	// KindInt16 indicates an int16 field stored as TAG_Short
	KindInt16
	// KindInt8 indicates an int8 field stored as TAG_Byte
	KindInt8
	// KindLazy indicates a Lazy[T] field wrapping a Serializable
	KindLazy
	// KindSerializable indicates a field implementing Serializable
	KindSerializable
	// KindHandler indicates a field converted by a registered type handler
	KindHandler
	// KindUnsupported indicates a field no conversion is known for
	KindUnsupported
)

// String returns the string representation of FieldKind.
func (k FieldKind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindFloat32:
		return "Float32"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindFloat64:
		return "Float64"
	case KindInt64:
		return "Int64"
	case KindInt16:
		return "Int16"
	case KindInt8:
		return "Int8"
	case KindLazy:
		return "Lazy"
	case KindSerializable:
		return "Serializable"
	case KindHandler:
		return "Handler"
	default:
		return "Unsupported"
	}
}

// TagInfo holds parsed tag information.
type TagInfo struct {
	Key     string // nbt:"Key"
	Ignored bool   // nbt:"-" or no tag
	Modes   Modes  // AllModes minus noload/nosave/nopacket
}

// parseTag parses the nbt key of a struct tag.
func parseTag(tag string) (TagInfo, error) {
	info := TagInfo{Ignored: true}
	if tag == "" {
		return info, nil
	}

	tags, err := structtag.Parse(tag)
	if err != nil {
		return info, fmt.Errorf("malformed struct tag %q: %w", tag, err)
	}
	t, err := tags.Get(tagName)
	if err != nil {
		// Not tagged for synchronization.
		return info, nil
	}
	if t.Name == tagIgnore {
		return info, nil
	}
	if strings.TrimSpace(t.Name) == "" {
		return info, fmt.Errorf("nbt tag %q has an empty key", t.Value())
	}

	info.Ignored = false
	info.Key = t.Name
	info.Modes = AllModes
	for _, opt := range t.Options {
		switch strings.TrimSpace(opt) {
		case modNoLoad:
			info.Modes.Clear(ModeLoad)
		case modNoSave:
			info.Modes.Clear(ModeSave)
		case modNoPacket:
			info.Modes.Clear(ModePacket)
		default:
			return info, fmt.Errorf("nbt tag %q has unknown option %q", t.Value(), opt)
		}
	}

	return info, nil
}
