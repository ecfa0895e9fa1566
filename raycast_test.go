package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastHitsNearestBlock(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(2, 1, 0, StoneID)
	world.SetBlock(4, 1, 0, StoneID)

	origin := mgl32.Vec3{0.5, 1.5, 0.5}
	hit, ok := RaycastBlocks(world, origin, mgl32.Vec3{1, 0, 0}, editReach)

	require.True(t, ok)
	assert.Equal(t, Vec3Int{2, 1, 0}, hit.Coord)
	assert.Equal(t, Vec3Int{-1, 0, 0}, hit.Normal)
	assert.InDelta(t, 1.5, float64(hit.Distance), 1e-5)
	assert.InDelta(t, 2.0, float64(hit.Point.X()), 1e-5)
}

func TestRaycastMiss(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(0, 10, 0, StoneID) // far off the ray

	_, ok := RaycastBlocks(world, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, editReach)
	assert.False(t, ok)
}

func TestRaycastRespectsReach(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(10, 0, 0, StoneID)

	_, ok := RaycastBlocks(world, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, editReach)
	assert.False(t, ok)
}

func TestRaycastFromInsideBlockMisses(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(0, 0, 0, StoneID)

	_, ok := RaycastBlocks(world, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, editReach)
	assert.False(t, ok)
}

func TestRaycastNormalPerFace(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(0, 0, 0, StoneID)

	tests := []struct {
		name   string
		origin mgl32.Vec3
		dir    mgl32.Vec3
		normal Vec3Int
	}{
		{"from +X", mgl32.Vec3{3, 0.5, 0.5}, mgl32.Vec3{-1, 0, 0}, Vec3Int{1, 0, 0}},
		{"from -X", mgl32.Vec3{-2, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, Vec3Int{-1, 0, 0}},
		{"from above", mgl32.Vec3{0.5, 3, 0.5}, mgl32.Vec3{0, -1, 0}, Vec3Int{0, 1, 0}},
		{"from below", mgl32.Vec3{0.5, -2, 0.5}, mgl32.Vec3{0, 1, 0}, Vec3Int{0, -1, 0}},
		{"from +Z", mgl32.Vec3{0.5, 0.5, 3}, mgl32.Vec3{0, 0, -1}, Vec3Int{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := RaycastBlocks(world, tt.origin, tt.dir, editReach)
			require.True(t, ok)
			assert.Equal(t, tt.normal, hit.Normal)
		})
	}
}

func TestBreakTargetedBlock(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(3, 1, 0, StoneID)

	camera, _ := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 0, 0.5})
	camera.yaw = 0
	camera.pitch = 0

	// Eye sits at y=1.62, level with the block's [1, 2) span.
	require.True(t, breakTargetedBlock(world, camera))
	_, ok := world.GetBlock(3, 1, 0)
	assert.False(t, ok)
}

func TestPlaceTargetedBlockOnFace(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(3, 1, 0, StoneID)

	camera, _ := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 0, 0.5})
	camera.yaw = 0

	require.True(t, placeTargetedBlock(world, camera, BrickID))
	got, ok := world.GetBlock(2, 1, 0)
	require.True(t, ok)
	assert.Equal(t, BrickID, got)
}

func TestOccupiedNeighborBecomesTheHit(t *testing.T) {
	// A cell in front of a struck face always lies on the ray, so when
	// it is occupied its own mesh is the nearer hit and placement lands
	// on the free cell before it instead of stacking.
	world, _ := newTestWorld()
	world.SetBlock(3, 1, 0, StoneID)
	world.SetBlock(2, 1, 0, StoneID)

	camera, _ := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 0, 0.5})
	camera.yaw = 0

	hit, ok := RaycastBlocks(world, camera.EyePosition(), camera.Front(), editReach)
	require.True(t, ok)
	assert.Equal(t, Vec3Int{2, 1, 0}, hit.Coord)

	require.True(t, placeTargetedBlock(world, camera, BrickID))
	got, ok := world.GetBlock(1, 1, 0)
	require.True(t, ok)
	assert.Equal(t, BrickID, got)
	// The struck blocks were not replaced.
	got, _ = world.GetBlock(2, 1, 0)
	assert.Equal(t, StoneID, got)
}

func TestNoBlockSelfPlacement(t *testing.T) {
	world, _ := newTestWorld()
	// The block directly in front of the player: its near face's
	// neighbor cell is the space the player occupies.
	world.SetBlock(1, 1, 0, StoneID)

	camera, _ := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 0, 0.5})
	camera.yaw = 0

	require.False(t, placeTargetedBlock(world, camera, DirtID))
	_, ok := world.GetBlock(0, 1, 0)
	assert.False(t, ok, "placement into the player's own volume must be rejected")
}

func TestPlaceAndBreakMissAreNoOps(t *testing.T) {
	world, _ := newTestWorld()

	camera, _ := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 0, 0.5})

	assert.False(t, breakTargetedBlock(world, camera))
	assert.False(t, placeTargetedBlock(world, camera, DirtID))
	assert.Equal(t, 0, world.BlockCount())
}
