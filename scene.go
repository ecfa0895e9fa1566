package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the insertion collaborator for renderable primitives. It only
// attaches and detaches meshes, it never moves them: transform math stays
// with whoever owns the mesh.
type Scene struct {
	meshes []*BlockMesh
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(mesh *BlockMesh) {
	s.meshes = append(s.meshes, mesh)
}

// Remove detaches a mesh by identity. Unknown meshes are ignored.
func (s *Scene) Remove(mesh *BlockMesh) {
	for i, m := range s.meshes {
		if m == mesh {
			s.meshes[i] = s.meshes[len(s.meshes)-1]
			s.meshes = s.meshes[:len(s.meshes)-1]
			return
		}
	}
}

func (s *Scene) Meshes() []*BlockMesh {
	return s.meshes
}

func (s *Scene) Len() int {
	return len(s.meshes)
}

// BlockMesh is the renderable primitive for a single block: one shared
// cube geometry, one per-type material, tagged with the grid coordinate
// it was created for so raycast hits can be mapped back to the store.
type BlockMesh struct {
	Coord     Vec3Int
	BlockType uint8
	Position  mgl32.Vec3
	geometry  *CubeGeometry
	material  *Material
}

// Bounds returns the mesh's world-space box, which coincides with the
// block's occupied unit cube.
func (m *BlockMesh) Bounds() aabb {
	return AABB(
		m.Position.Sub(mgl32.Vec3{0.5, 0.5, 0.5}),
		m.Position.Add(mgl32.Vec3{0.5, 0.5, 0.5}),
	)
}

// release drops per-primitive resources only. The geometry template and
// the material are shared across blocks and stay alive until the store
// itself is disposed.
func (m *BlockMesh) release() {
	m.geometry = nil
	m.material = nil
}

// CubeGeometry is the shared unit-cube template. GPU buffers are uploaded
// lazily by the renderer on first draw, so a store exercised headless
// (tests, tools) never touches OpenGL.
type CubeGeometry struct {
	vao      uint32
	vbo      uint32
	uploaded bool
}

func NewCubeGeometry() *CubeGeometry {
	return &CubeGeometry{}
}

func (g *CubeGeometry) Release() {
	if !g.uploaded {
		return
	}
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	g.vao, g.vbo = 0, 0
	g.uploaded = false
}

// Material holds the per-type display color. Block types differ only by
// color today; anything texture-related lives on the renderer's atlas.
type Material struct {
	Color mgl32.Vec3
}
