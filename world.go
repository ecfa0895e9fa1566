package main

var worldLog = newPrefixLogger("[world] ")

// VoxelWorld is the sparse block store: a map from grid coordinate to
// block type, plus one renderable primitive per present block. The two
// collections are kept in 1:1 correspondence; the primitive table is the
// single owner of every mesh handed to the scene.
type VoxelWorld struct {
	blocks    map[Vec3Int]uint8
	meshes    map[Vec3Int]*BlockMesh
	scene     *Scene
	geometry  *CubeGeometry
	materials map[uint8]*Material
}

func NewVoxelWorld(scene *Scene) *VoxelWorld {
	materials := make(map[uint8]*Material, len(blockRegistry))
	for id, t := range blockRegistry {
		materials[id] = &Material{Color: t.Color}
	}
	return &VoxelWorld{
		blocks:    make(map[Vec3Int]uint8),
		meshes:    make(map[Vec3Int]*BlockMesh),
		scene:     scene,
		geometry:  NewCubeGeometry(),
		materials: materials,
	}
}

// GetBlock returns the block type at the coordinate, or (0, false) when
// the coordinate is empty.
func (w *VoxelWorld) GetBlock(x, y, z int) (uint8, bool) {
	id, ok := w.blocks[Vec3Int{x, y, z}]
	return id, ok
}

// SetBlock places a block. An existing block at the coordinate is removed
// first, so placement always replaces rather than stacks. Unknown type
// IDs are rejected with a warning and leave the store untouched.
func (w *VoxelWorld) SetBlock(x, y, z int, id uint8) {
	if _, ok := lookupBlockType(id); !ok {
		worldLog.Printf("ignoring unknown block type %d at (%d, %d, %d)", id, x, y, z)
		return
	}

	coord := Vec3Int{x, y, z}
	w.RemoveBlock(x, y, z)

	mesh := &BlockMesh{
		Coord:     coord,
		BlockType: id,
		Position:  coord.center(),
		geometry:  w.geometry,
		material:  w.materials[id],
	}
	w.blocks[coord] = id
	w.meshes[coord] = mesh
	w.scene.Add(mesh)
}

// RemoveBlock deletes the block at the coordinate. Removing an empty
// coordinate is a no-op, so double removal is safe.
func (w *VoxelWorld) RemoveBlock(x, y, z int) {
	coord := Vec3Int{x, y, z}
	mesh, ok := w.meshes[coord]
	if !ok {
		return
	}
	w.scene.Remove(mesh)
	mesh.release()
	delete(w.meshes, coord)
	delete(w.blocks, coord)
}

// BlockMeshes returns the current primitive list for raycasting. The
// slice is rebuilt per call; callers must not cache it across frames
// that mutate the store.
func (w *VoxelWorld) BlockMeshes() []*BlockMesh {
	meshes := make([]*BlockMesh, 0, len(w.meshes))
	for _, m := range w.meshes {
		meshes = append(meshes, m)
	}
	return meshes
}

// BlockCount returns how many blocks are present.
func (w *VoxelWorld) BlockCount() int {
	return len(w.blocks)
}

// isSolidAt reports whether the coordinate holds a block that takes part
// in collision.
func (w *VoxelWorld) isSolidAt(coord Vec3Int) bool {
	id, ok := w.blocks[coord]
	if !ok {
		return false
	}
	t, ok := lookupBlockType(id)
	return ok && t.isSolid()
}

// Dispose releases every primitive, the shared geometry template and the
// per-type materials, and detaches everything from the scene. The world
// must not be used after disposal.
func (w *VoxelWorld) Dispose() {
	for coord, mesh := range w.meshes {
		w.scene.Remove(mesh)
		mesh.release()
		delete(w.meshes, coord)
		delete(w.blocks, coord)
	}
	w.geometry.Release()
	for id := range w.materials {
		delete(w.materials, id)
	}
}
