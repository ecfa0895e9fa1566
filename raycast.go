package main

import (
	"github.com/go-gl/mathgl/mgl32"
)

// editReach is how far block edits can reach from the eye, in blocks.
const editReach = 5.0

// RayHit describes the nearest primitive struck by an edit ray: the
// struck block's coordinate for destruction, and the face normal for
// computing the adjacent placement coordinate.
type RayHit struct {
	Mesh     *BlockMesh
	Coord    Vec3Int
	Normal   Vec3Int
	Point    mgl32.Vec3
	Distance float32
}

// RaycastBlocks intersects a ray with the store's primitive list and
// returns the nearest hit within maxDist. A miss is an ordinary outcome,
// not an error.
func RaycastBlocks(world *VoxelWorld, origin, dir mgl32.Vec3, maxDist float32) (RayHit, bool) {
	if dir.Len() == 0 {
		return RayHit{}, false
	}
	dir = dir.Normalize()

	best := RayHit{Distance: maxDist}
	found := false
	for _, mesh := range world.BlockMeshes() {
		entry, axis, ok := rayIntersectsBox(origin, dir, mesh.Bounds())
		if !ok || entry > best.Distance {
			continue
		}

		normal := Vec3Int{}
		switch axis {
		case 0:
			normal.x = -int(sign(dir.X()))
		case 1:
			normal.y = -int(sign(dir.Y()))
		case 2:
			normal.z = -int(sign(dir.Z()))
		}

		best = RayHit{
			Mesh:     mesh,
			Coord:    mesh.Coord,
			Normal:   normal,
			Point:    origin.Add(dir.Mul(entry)),
			Distance: entry,
		}
		found = true
	}
	return best, found
}

// rayIntersectsBox runs the slab test and returns the entry distance and
// the axis of the entry face. Rays starting inside the box do not count
// as hits; there is no face to step off of.
func rayIntersectsBox(origin, dir mgl32.Vec3, box aabb) (float32, int, bool) {
	tNear := float32(mgl32.InfNeg)
	tFar := float32(mgl32.InfPos)
	entryAxis := 0

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] <= box.Min[axis] || origin[axis] >= box.Max[axis] {
				return 0, 0, false
			}
			continue
		}

		inv := 1.0 / dir[axis]
		t1 := (box.Min[axis] - origin[axis]) * inv
		t2 := (box.Max[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
			entryAxis = axis
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return 0, 0, false
		}
	}

	if tNear < 0 {
		return 0, 0, false
	}
	return tNear, entryAxis, true
}

// breakTargetedBlock removes the block under the camera's aim. Returns
// false on a raycast miss.
func breakTargetedBlock(world *VoxelWorld, camera *FirstPersonCamera) bool {
	hit, ok := RaycastBlocks(world, camera.EyePosition(), camera.Front(), editReach)
	if !ok {
		return false
	}
	world.RemoveBlock(hit.Coord.x, hit.Coord.y, hit.Coord.z)
	return true
}

// placeTargetedBlock puts a block of the given type on the face under
// the camera's aim. Placement is refused when the adjacent coordinate is
// already occupied or would overlap the player's own volume.
func placeTargetedBlock(world *VoxelWorld, camera *FirstPersonCamera, id uint8) bool {
	hit, ok := RaycastBlocks(world, camera.EyePosition(), camera.Front(), editReach)
	if !ok {
		return false
	}

	target := hit.Coord.add(hit.Normal)
	if _, occupied := world.GetBlock(target.x, target.y, target.z); occupied {
		return false
	}
	if camera.OverlapsBlock(target) {
		return false
	}

	world.SetBlock(target.x, target.y, target.z, id)
	return true
}
