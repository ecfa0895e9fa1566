package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() (*VoxelWorld, *Scene) {
	scene := NewScene()
	return NewVoxelWorld(scene), scene
}

func TestSetGetRemoveRoundTrip(t *testing.T) {
	world, _ := newTestWorld()

	for id := range blockRegistry {
		world.SetBlock(3, 4, 5, id)
		got, ok := world.GetBlock(3, 4, 5)
		require.True(t, ok)
		require.Equal(t, id, got)
	}

	world.RemoveBlock(3, 4, 5)
	_, ok := world.GetBlock(3, 4, 5)
	require.False(t, ok)
}

func TestSetBlockReplaces(t *testing.T) {
	world, scene := newTestWorld()

	world.SetBlock(1, 2, 3, DirtID)
	world.SetBlock(1, 2, 3, StoneID)

	got, ok := world.GetBlock(1, 2, 3)
	require.True(t, ok)
	assert.Equal(t, StoneID, got)

	// Exactly one primitive at the coordinate, carrying the latest type.
	require.Equal(t, 1, scene.Len())
	mesh := scene.Meshes()[0]
	assert.Equal(t, StoneID, mesh.BlockType)
	assert.Equal(t, Vec3Int{1, 2, 3}, mesh.Coord)
}

func TestSetBlockRejectsUnknownType(t *testing.T) {
	world, scene := newTestWorld()

	world.SetBlock(0, 0, 0, 200)
	_, ok := world.GetBlock(0, 0, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, scene.Len())

	// An existing block survives an invalid overwrite attempt.
	world.SetBlock(0, 0, 0, GrassID)
	world.SetBlock(0, 0, 0, 200)
	got, ok := world.GetBlock(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, GrassID, got)
	assert.Equal(t, 1, scene.Len())
}

func TestRemoveBlockIdempotent(t *testing.T) {
	world, scene := newTestWorld()

	world.RemoveBlock(7, 7, 7)

	world.SetBlock(7, 7, 7, SandID)
	world.RemoveBlock(7, 7, 7)
	world.RemoveBlock(7, 7, 7)

	_, ok := world.GetBlock(7, 7, 7)
	assert.False(t, ok)
	assert.Equal(t, 0, scene.Len())
}

func TestMeshPositionAndTag(t *testing.T) {
	world, _ := newTestWorld()

	world.SetBlock(-2, 0, 4, BrickID)
	meshes := world.BlockMeshes()
	require.Len(t, meshes, 1)

	mesh := meshes[0]
	assert.Equal(t, Vec3Int{-2, 0, 4}, mesh.Coord)
	assert.InDelta(t, -1.5, float64(mesh.Position.X()), 1e-6)
	assert.InDelta(t, 0.5, float64(mesh.Position.Y()), 1e-6)
	assert.InDelta(t, 4.5, float64(mesh.Position.Z()), 1e-6)
}

func TestStoreAndSceneStayInSync(t *testing.T) {
	world, scene := newTestWorld()

	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			world.SetBlock(x, 0, z, StoneID)
		}
	}
	require.Equal(t, 16, world.BlockCount())
	require.Equal(t, 16, scene.Len())
	require.Len(t, world.BlockMeshes(), 16)

	world.RemoveBlock(0, 0, 0)
	world.RemoveBlock(3, 0, 3)
	assert.Equal(t, 14, world.BlockCount())
	assert.Equal(t, 14, scene.Len())
}

func TestDisposeReleasesEverything(t *testing.T) {
	world, scene := newTestWorld()

	GeneratePlatform(world, 2, 0, GrassID)
	require.NotZero(t, scene.Len())

	world.Dispose()

	assert.Empty(t, world.BlockMeshes())
	assert.Equal(t, 0, scene.Len())
	assert.Equal(t, 0, world.BlockCount())
}

func TestIsSolidAt(t *testing.T) {
	world, _ := newTestWorld()

	world.SetBlock(0, 0, 0, StoneID)
	assert.True(t, world.isSolidAt(Vec3Int{0, 0, 0}))
	assert.False(t, world.isSolidAt(Vec3Int{0, 1, 0}))
}
