package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// groundEpsilon extends the player box slightly downward during the
// vertical pass so the block the player rests on keeps being detected.
const groundEpsilon = 0.001

// fallbackGroundLevel is the flat ground plane used when no voxel world
// is attached to the controller.
const fallbackGroundLevel = 0.0

// moveWithCollision applies a displacement one axis at a time, in the
// fixed order X, Y, Z, each axis starting from the result of the one
// before it. The ordering is what makes diagonal movement into a wall
// slide along it instead of stopping dead; it must not be changed.
func (c *FirstPersonCamera) moveWithCollision(delta mgl32.Vec3) {
	c.onGround = false

	if c.world == nil {
		c.position = c.position.Add(delta)
		if c.position.Y() <= fallbackGroundLevel {
			c.position[1] = fallbackGroundLevel
			c.velocity[1] = 0
			c.onGround = true
		}
		return
	}

	next := c.position

	// X: blocked means holding the previous value.
	candidate := next
	candidate[0] += delta.X()
	if c.collidesAt(candidate, 0) {
		c.velocity[0] = 0
	} else {
		next[0] = candidate[0]
	}

	// Y: blocked while descending snaps the feet onto the obstructing
	// block, blocked while ascending snaps under its underside. The
	// ground probe only applies going down; probing down while moving
	// up would turn the resting block into a false ceiling.
	candidate = next
	candidate[1] += delta.Y()
	eps := float32(0)
	if delta.Y() <= 0 {
		eps = groundEpsilon
	}
	if c.collidesAt(candidate, eps) {
		if delta.Y() <= 0 {
			next[1] = float32(math.Floor(float64(candidate[1]-groundEpsilon))) + 1
			c.velocity[1] = 0
			c.onGround = true
		} else {
			head := candidate[1] + c.physics.PlayerHeight
			next[1] = float32(math.Floor(float64(head))) - c.physics.PlayerHeight
			c.velocity[1] = 0
		}
	} else {
		next[1] = candidate[1]
	}

	// Z: same as X.
	candidate = next
	candidate[2] += delta.Z()
	if c.collidesAt(candidate, 0) {
		c.velocity[2] = 0
	} else {
		next[2] = candidate[2]
	}

	c.position = next
}

// collidesAt tests the player box, feet at the given position, against
// every block whose unit cube could overlap it. The candidate range is
// found by flooring the box corners, so only a small neighborhood of the
// store is ever visited.
func (c *FirstPersonCamera) collidesAt(feet mgl32.Vec3, downEps float32) bool {
	box := c.boxAt(feet, downEps)

	min := blockCoordAt(box.Min)
	max := blockCoordAt(box.Max)
	for x := min.x; x <= max.x; x++ {
		for y := min.y; y <= max.y; y++ {
			for z := min.z; z <= max.z; z++ {
				coord := Vec3Int{x, y, z}
				if !c.world.isSolidAt(coord) {
					continue
				}
				if Intersects(box, blockAABB(coord)) {
					return true
				}
			}
		}
	}
	return false
}

// boxAt is the player's collision volume with feet at the given position.
func (c *FirstPersonCamera) boxAt(feet mgl32.Vec3, downEps float32) aabb {
	half := c.physics.PlayerWidth / 2
	return AABB(
		mgl32.Vec3{feet.X() - half, feet.Y() - downEps, feet.Z() - half},
		mgl32.Vec3{feet.X() + half, feet.Y() + c.physics.PlayerHeight, feet.Z() + half},
	)
}

// Box is the player's current collision volume.
func (c *FirstPersonCamera) Box() aabb {
	return c.boxAt(c.position, 0)
}

// OverlapsBlock reports whether placing a block at coord would intersect
// the player's own volume.
func (c *FirstPersonCamera) OverlapsBlock(coord Vec3Int) bool {
	return Intersects(c.Box(), blockAABB(coord))
}
