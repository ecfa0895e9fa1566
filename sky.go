package main

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// skyPass draws a gradient sky on a cube around the camera, behind
// everything and without writing depth.
type skyPass struct {
	vao     uint32
	vbo     uint32
	program uint32
}

func newSkyPass(shaderDir string) *skyPass {
	// Unit cube, positions only. Culling is disabled while drawing so
	// the inside faces are visible.
	vertices := []float32{
		// +X
		1, -1, -1, 1, 1, -1, 1, 1, 1,
		1, -1, -1, 1, 1, 1, 1, -1, 1,
		// -X
		-1, -1, -1, -1, -1, 1, -1, 1, 1,
		-1, -1, -1, -1, 1, 1, -1, 1, -1,
		// +Y
		-1, 1, -1, 1, 1, -1, 1, 1, 1,
		-1, 1, -1, 1, 1, 1, -1, 1, 1,
		// -Y
		-1, -1, -1, -1, -1, 1, 1, -1, 1,
		-1, -1, -1, 1, -1, 1, 1, -1, -1,
		// +Z
		-1, -1, 1, 1, -1, 1, 1, 1, 1,
		-1, -1, 1, 1, 1, 1, -1, 1, 1,
		// -Z
		-1, -1, -1, 1, -1, -1, 1, 1, -1,
		-1, -1, -1, 1, 1, -1, -1, 1, -1,
	}

	s := &skyPass{}
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	s.program = linkProgram(
		loadShader(filepath.Join(shaderDir, "sky.vert"), gl.VERTEX_SHADER),
		loadShader(filepath.Join(shaderDir, "sky.frag"), gl.FRAGMENT_SHADER),
	)
	return s
}

// draw renders the sky. Call after clearing the buffers and before the
// block pass, with the same projection/view matrices as the world.
func (s *skyPass) draw(projection, view mgl32.Mat4) {
	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(s.program)

	// Strip the translation so the cube follows the camera.
	viewNoTranslation := view.Mat3().Mat4()

	projectionLoc := gl.GetUniformLocation(s.program, gl.Str("projection\x00"))
	viewLoc := gl.GetUniformLocation(s.program, gl.Str("view\x00"))
	gl.UniformMatrix4fv(projectionLoc, 1, false, &projection[0])
	gl.UniformMatrix4fv(viewLoc, 1, false, &viewNoTranslation[0])

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
}
