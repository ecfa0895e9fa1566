package main

import "github.com/go-gl/mathgl/mgl32"

// blockKind tags how a block type participates in collision. Every type
// shipped today is solid; the tag exists so the collision test can branch
// on solidity instead of growing per-ID special cases later.
type blockKind uint8

const (
	kindSolid blockKind = iota
	kindNonSolid
)

type blockType struct {
	Name  string
	Color mgl32.Vec3
	Kind  blockKind
}

const (
	GrassID uint8 = 1
	DirtID  uint8 = 2
	StoneID uint8 = 3
	SandID  uint8 = 4
	WoodID  uint8 = 5
	LeafID  uint8 = 6
	BrickID uint8 = 7
	SnowID  uint8 = 8
	GoldID  uint8 = 9
)

var blockRegistry = map[uint8]blockType{
	GrassID: {Name: "grass", Color: mgl32.Vec3{0.30, 0.65, 0.25}, Kind: kindSolid},
	DirtID:  {Name: "dirt", Color: mgl32.Vec3{0.48, 0.33, 0.20}, Kind: kindSolid},
	StoneID: {Name: "stone", Color: mgl32.Vec3{0.52, 0.52, 0.54}, Kind: kindSolid},
	SandID:  {Name: "sand", Color: mgl32.Vec3{0.86, 0.80, 0.55}, Kind: kindSolid},
	WoodID:  {Name: "wood", Color: mgl32.Vec3{0.42, 0.30, 0.16}, Kind: kindSolid},
	LeafID:  {Name: "leaf", Color: mgl32.Vec3{0.18, 0.45, 0.16}, Kind: kindSolid},
	BrickID: {Name: "brick", Color: mgl32.Vec3{0.64, 0.26, 0.20}, Kind: kindSolid},
	SnowID:  {Name: "snow", Color: mgl32.Vec3{0.92, 0.94, 0.96}, Kind: kindSolid},
	GoldID:  {Name: "gold", Color: mgl32.Vec3{0.90, 0.78, 0.22}, Kind: kindSolid},
}

func lookupBlockType(id uint8) (blockType, bool) {
	t, ok := blockRegistry[id]
	return t, ok
}

func (t blockType) isSolid() bool {
	return t.Kind == kindSolid
}
