package nbtsync

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// RegisterDefaults registers handlers for common server value types:
//
//	mgl64.Vec3  {x, y, z TAG_Double}
//	cube.Pos    {x, y, z TAG_Int}
//	uuid.UUID   {Most, Least TAG_Long}
func RegisterDefaults(r *Registry) error {
	if err := Register(r, loadVec3, saveVec3); err != nil {
		return err
	}
	if err := Register(r, loadPos, savePos); err != nil {
		return err
	}
	return Register(r, loadUUID, saveUUID)
}

func loadVec3(b Bag) mgl64.Vec3 {
	return mgl64.Vec3{b.Float64("x"), b.Float64("y"), b.Float64("z")}
}

func saveVec3(b Bag, v mgl64.Vec3) {
	b.PutFloat64("x", v.X())
	b.PutFloat64("y", v.Y())
	b.PutFloat64("z", v.Z())
}

func loadPos(b Bag) cube.Pos {
	return cube.Pos{int(b.Int32("x")), int(b.Int32("y")), int(b.Int32("z"))}
}

func savePos(b Bag, p cube.Pos) {
	b.PutInt32("x", int32(p.X()))
	b.PutInt32("y", int32(p.Y()))
	b.PutInt32("z", int32(p.Z()))
}

func loadUUID(b Bag) uuid.UUID {
	var id uuid.UUID
	most, least := uint64(b.Int64("Most")), uint64(b.Int64("Least"))
	for i := 0; i < 8; i++ {
		id[i] = byte(most >> (56 - 8*i))
		id[8+i] = byte(least >> (56 - 8*i))
	}
	return id
}

func saveUUID(b Bag, id uuid.UUID) {
	var most, least uint64
	for i := 0; i < 8; i++ {
		most = most<<8 | uint64(id[i])
		least = least<<8 | uint64(id[8+i])
	}
	b.PutInt64("Most", int64(most))
	b.PutInt64("Least", int64(least))
}
