package nbtsync

import (
	"io"
	"log/slog"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type counter struct {
	Count int32  `nbt:"Count"`
	Label string `nbt:"Label,nosave"`
}

type primitives struct {
	I32      int32   `nbt:"I32"`
	F32      float32 `nbt:"F32"`
	S        string  `nbt:"S"`
	B        bool    `nbt:"B"`
	F64      float64 `nbt:"F64"`
	I64      int64   `nbt:"I64"`
	I16      int16   `nbt:"I16"`
	I8       int8    `nbt:"I8"`
	Untagged int
}

type modal struct {
	Both     int32 `nbt:"Both"`
	NoSave   int32 `nbt:"NoSave,nosave"`
	NoPacket int32 `nbt:"NoPacket,nopacket"`
	NoLoad   int32 `nbt:"NoLoad,noload"`
}

// color has no built-in conversion.
type color uint32

type tinted struct {
	Before int32  `nbt:"Before"`
	Tint   color  `nbt:"Tint"`
	After  string `nbt:"After"`
}

func registerColor(r *Registry) error {
	return Register(r,
		func(b Bag) color { return color(b.Int32("rgb")) },
		func(b Bag, c color) { b.PutInt32("rgb", int32(c)) },
	)
}

type inventory struct {
	Items []string
}

func (i *inventory) SerializeNBT() any {
	list := make([]any, len(i.Items))
	for n, item := range i.Items {
		list[n] = item
	}
	return map[string]any{"Items": list}
}

func (i *inventory) DeserializeNBT(data any) {
	m, _ := data.(map[string]any)
	list, _ := m["Items"].([]any)
	i.Items = i.Items[:0]
	for _, v := range list {
		if s, ok := v.(string); ok {
			i.Items = append(i.Items, s)
		}
	}
}

type chest struct {
	Inv   *inventory       `nbt:"Inv"`
	Spare inventory        `nbt:"Spare"`
	Fuel  Lazy[*inventory] `nbt:"Fuel"`
	None  Lazy[*inventory] `nbt:"None"`
}

type baseTile struct {
	X  int32  `nbt:"x"`
	ID string `nbt:"id"`
}

type sign struct {
	baseTile
	Text string `nbt:"Text"`
}

type ptrSign struct {
	*baseTile
	Text string `nbt:"Text"`
}
