package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3Int is an integer grid coordinate. A block at coordinate (x, y, z)
// occupies the unit cube [x, x+1) x [y, y+1) x [z, z+1).
type Vec3Int struct {
	x int
	y int
	z int
}

func (v Vec3Int) add(other Vec3Int) Vec3Int {
	return Vec3Int{v.x + other.x, v.y + other.y, v.z + other.z}
}

// center returns the world-space center of the unit cube at this coordinate.
func (v Vec3Int) center() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.x) + 0.5, float32(v.y) + 0.5, float32(v.z) + 0.5}
}

// blockCoordAt floors a world-space point down to the grid coordinate
// containing it.
func blockCoordAt(point mgl32.Vec3) Vec3Int {
	return Vec3Int{
		int(math.Floor(float64(point.X()))),
		int(math.Floor(float64(point.Y()))),
		int(math.Floor(float64(point.Z()))),
	}
}

type aabb struct {
	Min, Max mgl32.Vec3
}

func AABB(min, max mgl32.Vec3) aabb {
	return aabb{Min: min, Max: max}
}

// blockAABB returns the occupied region of the unit cube at coord.
func blockAABB(coord Vec3Int) aabb {
	min := mgl32.Vec3{float32(coord.x), float32(coord.y), float32(coord.z)}
	return AABB(min, min.Add(mgl32.Vec3{1, 1, 1}))
}

// Intersects reports whether two boxes overlap. Touching faces do not
// count as an overlap, so a box resting exactly on top of a block is
// not inside it.
func Intersects(a, b aabb) bool {
	return (a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X()) &&
		(a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y()) &&
		(a.Min.Z() < b.Max.Z() && a.Max.Z() > b.Min.Z())
}

func sign(x float32) float32 {
	if x > 0 {
		return 1
	} else if x == 0 {
		return 0
	}
	return -1
}

func lerp(a, b mgl32.Vec3, alpha float32) mgl32.Vec3 {
	return (b.Sub(a)).Mul(alpha).Add(a)
}
