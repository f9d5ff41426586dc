package nbtsync

import (
	"fmt"
)

// SaveTag returns a new bag holding the fields of obj that are persisted.
func (e *Engine) SaveTag(obj any) (Bag, error) {
	return e.Store(obj, NewBag(), ModeSave)
}

// UpdateTag returns a new bag holding the fields of obj that are sent to
// clients.
func (e *Engine) UpdateTag(obj any) (Bag, error) {
	return e.Store(obj, NewBag(), ModePacket)
}

// UpdatePacket encodes the update tag of obj with NetworkLittleEndian.
// Field errors are returned alongside the payload of the remaining fields.
func (e *Engine) UpdatePacket(obj any) ([]byte, error) {
	b, ferr := e.UpdateTag(obj)
	if ferr != nil && e.strict {
		return nil, ferr
	}
	data, err := Marshal(b, NetworkLittleEndian)
	if err != nil {
		return nil, err
	}
	return data, ferr
}

// HandleUpdatePacket decodes an update packet and loads it into obj.
func (e *Engine) HandleUpdatePacket(obj any, data []byte) error {
	b, err := Unmarshal(data, NetworkLittleEndian)
	if err != nil {
		return fmt.Errorf("nbtsync: update packet: %w", err)
	}
	return e.Load(obj, b)
}
