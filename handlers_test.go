package nbtsync

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawner struct {
	Pos    cube.Pos   `nbt:"Pos"`
	Offset mgl64.Vec3 `nbt:"Offset"`
	Owner  uuid.UUID  `nbt:"Owner"`
}

func TestDefaults_RoundTrip(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterDefaults(reg))
	assert.Equal(t, 3, reg.Len())
	e := NewEngine(reg, WithLogger(quietLogger()))

	in := &spawner{
		Pos:    cube.Pos{-12, 64, 300},
		Offset: mgl64.Vec3{0.5, -1.25, 2},
		Owner:  uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	}

	b, err := e.Store(in, NewBag(), ModeSave)
	require.NoError(t, err)

	pos := b.Compound("Pos")
	assert.Equal(t, int32(-12), pos.Int32("x"))
	assert.Equal(t, int32(300), pos.Int32("z"))
	assert.Equal(t, -1.25, b.Compound("Offset").Float64("y"))

	owner := b.Compound("Owner")
	assert.Equal(t, uint64(0x123e4567e89b12d3), uint64(owner.Int64("Most")))
	assert.Equal(t, uint64(0xa456426614174000), uint64(owner.Int64("Least")))

	out := &spawner{}
	require.NoError(t, e.Load(out, b))
	assert.Equal(t, *in, *out)
}

func TestDefaults_SurviveEncoding(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterDefaults(reg))
	e := NewEngine(reg, WithLogger(quietLogger()))

	in := &spawner{Pos: cube.Pos{1, 2, 3}, Owner: uuid.New()}
	b, err := e.SaveTag(in)
	require.NoError(t, err)

	data, err := Marshal(b, BigEndian)
	require.NoError(t, err)
	decoded, err := Unmarshal(data, BigEndian)
	require.NoError(t, err)

	out := &spawner{}
	require.NoError(t, e.Load(out, decoded))
	assert.Equal(t, *in, *out)
}
