package nbtsync

import (
	"errors"

	"github.com/df-mc/dragonfly/server/world"
)

// Block adapts a block value to world.NBTer so its nbt tagged fields are
// persisted by the world provider. world.NBTer has no error return: field
// errors are logged by the engine, and errors that stop the call before any
// field is visited are logged here.
//
// Usage:
//
//	type Sign struct {
//	    Text  string `nbt:"Text"`
//	    Waxed bool   `nbt:"IsWaxed,nopacket"`
//	}
//
//	b := nbtsync.Block[Sign]{Engine: engine, Value: Sign{Text: "hi"}}
//	data := b.EncodeNBT()
type Block[B any] struct {
	Engine *Engine
	Value  B
}

// EncodeNBT implements world.NBTer.
func (b Block[B]) EncodeNBT() map[string]any {
	v := b.Value
	bag, err := b.Engine.Store(&v, NewBag(), ModeSave)
	b.report("encode", err)
	return map[string]any(bag)
}

// DecodeNBT implements world.NBTer. It returns a new Block[B] holding a copy
// of the value with data loaded into it.
func (b Block[B]) DecodeNBT(data map[string]any) any {
	v := b.Value
	b.report("decode", b.Engine.Load(&v, Bag(data)))
	return Block[B]{Engine: b.Engine, Value: v}
}

func (b Block[B]) report(op string, err error) {
	var ferr *FieldError
	if err == nil || errors.As(err, &ferr) {
		return
	}
	b.Engine.log.Error("nbtsync: block "+op+" failed", "type", typeName(typeOf[B]()), "error", err)
}

var _ world.NBTer = Block[struct{}]{}
