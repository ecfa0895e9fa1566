package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	stbi "neilpa.me/go-stbi"

	"VoxelSandbox/config"
)

var renderLog = newPrefixLogger("[render] ")

// Renderer draws the scene's block primitives with the shared cube
// geometry and per-type flat colors, optionally textured from an atlas.
type Renderer struct {
	blockProgram uint32
	shaderDir    string

	projection    mgl32.Mat4
	projectionLoc int32
	viewLoc       int32
	modelLoc      int32
	colorLoc      int32
	useTextureLoc int32

	atlasTexture uint32
	hasAtlas     bool
}

func NewRenderer(settings config.Settings) *Renderer {
	if err := gl.Init(); err != nil {
		panic(err)
	}
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{shaderDir: settings.Assets.ShaderDir}
	r.blockProgram = linkProgram(
		loadShader(filepath.Join(r.shaderDir, "block.vert"), gl.VERTEX_SHADER),
		loadShader(filepath.Join(r.shaderDir, "block.frag"), gl.FRAGMENT_SHADER),
	)

	gl.UseProgram(r.blockProgram)
	r.projectionLoc = gl.GetUniformLocation(r.blockProgram, gl.Str("projection\x00"))
	r.viewLoc = gl.GetUniformLocation(r.blockProgram, gl.Str("view\x00"))
	r.modelLoc = gl.GetUniformLocation(r.blockProgram, gl.Str("model\x00"))
	r.colorLoc = gl.GetUniformLocation(r.blockProgram, gl.Str("blockColor\x00"))
	r.useTextureLoc = gl.GetUniformLocation(r.blockProgram, gl.Str("useTexture\x00"))

	r.setProjection(settings.Window.Width, settings.Window.Height)

	if settings.Assets.TextureAtlas != "" {
		if texture, err := loadTextureAtlas(settings.Assets.TextureAtlas); err != nil {
			renderLog.Printf("texture atlas unavailable, using flat colors: %v", err)
		} else {
			r.atlasTexture = texture
			r.hasAtlas = true
		}
	}
	return r
}

func (r *Renderer) setProjection(width, height int) {
	aspectRatio := float32(width) / float32(height)
	fieldOfView := float32(70)
	nearClipPlane := float32(0.1)
	farClipPlane := float32(350.0)
	r.projection = mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspectRatio, nearClipPlane, farClipPlane)
}

// DrawScene renders every block mesh currently attached to the scene.
func (r *Renderer) DrawScene(scene *Scene, view mgl32.Mat4) {
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.UseProgram(r.blockProgram)

	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &r.projection[0])
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0])

	if r.hasAtlas {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.atlasTexture)
		gl.Uniform1i(r.useTextureLoc, 1)
	} else {
		gl.Uniform1i(r.useTextureLoc, 0)
	}

	for _, mesh := range scene.Meshes() {
		geometry := mesh.geometry
		if geometry == nil {
			continue
		}
		if !geometry.uploaded {
			uploadCubeGeometry(geometry)
		}

		model := mgl32.Translate3D(mesh.Position.X(), mesh.Position.Y(), mesh.Position.Z())
		gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])

		color := mesh.material.Color
		gl.Uniform3f(r.colorLoc, color.X(), color.Y(), color.Z())

		gl.BindVertexArray(geometry.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount)
	}
}

// uploadCubeGeometry pushes the shared cube template to the GPU. Done
// lazily so headless users of the store never reach OpenGL.
func uploadCubeGeometry(g *CubeGeometry) {
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	stride := int32(cubeVertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, uintptr(6*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	g.uploaded = true
}

// loadTextureAtlas decodes an image with stbi and uploads it with
// nearest-neighbor filtering so block pixels stay crisp.
func loadTextureAtlas(path string) (uint32, error) {
	rgba, err := stbi.Load(path)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", path, err)
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(rgba.Bounds().Dx()), int32(rgba.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return textureID, nil
}

func stringFromShaderFile(shaderFilePath string) string {
	content, err := os.ReadFile(shaderFilePath)
	if err != nil {
		panic(err)
	}
	return string(content)
}

func loadShader(shaderFilePath string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(stringFromShaderFile(shaderFilePath) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()

	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := string(make([]byte, logLength))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		panic(fmt.Sprintf("compile %s: %s", shaderFilePath, infoLog))
	}
	return shader
}

func linkProgram(vertexShader, fragmentShader uint32) uint32 {
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vertexShader)
	gl.DetachShader(prog, fragmentShader)
	return prog
}
