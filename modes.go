package nbtsync

import (
	"math/bits"
	"strings"
)

// Mode identifies a synchronization direction.
type Mode uint8

const (
	// ModeLoad reads fields from a bag.
	ModeLoad Mode = iota
	// ModeSave writes fields into a bag for persistence.
	ModeSave
	// ModePacket writes fields into a bag sent to clients.
	ModePacket
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeLoad:
		return "load"
	case ModeSave:
		return "save"
	case ModePacket:
		return "packet"
	default:
		return "unknown"
	}
}

// Modes is a bitmask of the modes a field participates in.
type Modes uint8

// AllModes is the default for tagged fields: load, save and packet.
const AllModes = Modes(1<<ModeLoad | 1<<ModeSave | 1<<ModePacket)

// ModesOf returns a bitmask with the given modes set.
func ModesOf(modes ...Mode) Modes {
	var m Modes
	for _, mode := range modes {
		m.Set(mode)
	}
	return m
}

// Set sets the bit for mode.
func (m *Modes) Set(mode Mode) {
	*m |= 1 << mode
}

// Clear clears the bit for mode.
func (m *Modes) Clear(mode Mode) {
	*m &^= 1 << mode
}

// Has returns true if the bit for mode is set.
func (m Modes) Has(mode Mode) bool {
	return m&(1<<mode) != 0
}

// Without returns a copy of m with the given modes cleared.
func (m Modes) Without(modes ...Mode) Modes {
	for _, mode := range modes {
		m.Clear(mode)
	}
	return m
}

// IsZero returns true if no bits are set.
func (m Modes) IsZero() bool {
	return m == 0
}

// Count returns the number of modes set.
func (m Modes) Count() int {
	return bits.OnesCount8(uint8(m))
}

// String lists the set modes, e.g. "load|save".
func (m Modes) String() string {
	if m.IsZero() {
		return "none"
	}
	var parts []string
	for _, mode := range []Mode{ModeLoad, ModeSave, ModePacket} {
		if m.Has(mode) {
			parts = append(parts, mode.String())
		}
	}
	return strings.Join(parts, "|")
}
