package nbtsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePacket_RoundTrip(t *testing.T) {
	e := newTestEngine()
	in := &modal{Both: 1, NoSave: 2, NoPacket: 3, NoLoad: 4}

	data, err := e.UpdatePacket(in)
	require.NoError(t, err)

	out := &modal{NoPacket: 30, NoLoad: 40}
	require.NoError(t, e.HandleUpdatePacket(out, data))
	assert.Equal(t, modal{Both: 1, NoSave: 2, NoPacket: 0, NoLoad: 40}, *out)
}

func TestUpdatePacket_FieldErrors(t *testing.T) {
	obj := &tinted{Before: 1, After: "z"}

	data, err := newTestEngine().UpdatePacket(obj)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	require.NotNil(t, data)

	b, err := Unmarshal(data, NetworkLittleEndian)
	require.NoError(t, err)
	assert.Equal(t, Bag{"Before": int32(1), "After": "z"}, b)

	data, err = newTestEngine(WithStrict()).UpdatePacket(obj)
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestHandleUpdatePacket_Garbage(t *testing.T) {
	err := newTestEngine().HandleUpdatePacket(&modal{}, []byte{0x01})
	assert.Error(t, err)
}

func TestSaveTagAndUpdateTag(t *testing.T) {
	e := newTestEngine()
	c := &counter{Count: 2, Label: "l"}

	saved, err := e.SaveTag(c)
	require.NoError(t, err)
	assert.Equal(t, Bag{"Count": int32(2)}, saved)

	sent, err := e.UpdateTag(c)
	require.NoError(t, err)
	assert.Equal(t, Bag{"Count": int32(2), "Label": "l"}, sent)
}
