package main

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"golang.org/x/image/math/fixed"

	"VoxelSandbox/config"
)

// hudText is one debug overlay line. Content is a pointer so the HUD
// picks up new values without re-registering.
type hudText struct {
	Texture  uint32
	Position mgl32.Vec2
	FontSize float64
	Content  *string
}

// hud renders debug text with freetype and a crosshair quad. The HUD
// degrades to crosshair-only when the configured font is missing.
type hud struct {
	program  uint32
	ctx      *freetype.Context
	canvas   *image.RGBA
	texts    []*hudText
	quadVAO  uint32
	enabled  bool
	fontOK   bool
	width    int
	height   int
	colorLoc int32
	texLoc   int32
}

var uiLog = newPrefixLogger("[ui] ")

func newHud(settings config.Settings) *hud {
	h := &hud{
		enabled: true,
		width:   settings.Window.Width,
		height:  settings.Window.Height,
	}
	h.program = linkProgram(
		loadShader(filepath.Join(settings.Assets.ShaderDir, "ui.vert"), gl.VERTEX_SHADER),
		loadShader(filepath.Join(settings.Assets.ShaderDir, "ui.frag"), gl.FRAGMENT_SHADER),
	)
	h.colorLoc = gl.GetUniformLocation(h.program, gl.Str("tint\x00"))
	h.texLoc = gl.GetUniformLocation(h.program, gl.Str("useTexture\x00"))
	h.initQuadVAO()

	if settings.Assets.FontPath == "" {
		return h // crosshair-only, no font configured
	}
	ctx, canvas, err := loadFont(settings.Assets.FontPath)
	if err != nil {
		uiLog.Printf("debug text disabled: %v", err)
	} else {
		h.ctx = ctx
		h.canvas = canvas
		h.fontOK = true
	}
	return h
}

// setSize tracks the framebuffer so the ortho projection and crosshair
// center follow window resizes.
func (h *hud) setSize(width, height int) {
	h.width = width
	h.height = height
}

// loadFont sets up a freetype context drawing into a square RGBA canvas.
func loadFont(pathToFont string) (*freetype.Context, *image.RGBA, error) {
	fontData, err := os.ReadFile(pathToFont)
	if err != nil {
		return nil, nil, err
	}

	parsedFont, err := freetype.ParseFont(fontData)
	if err != nil {
		return nil, nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, 512, 512))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetFont(parsedFont)
	ctx.SetDst(canvas)
	ctx.SetClip(canvas.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(2) // sharp text
	return ctx, canvas, nil
}

func (h *hud) initQuadVAO() {
	vertices := []float32{
		0, 1, 0, 0, 1,
		0, 0, 0, 0, 0,
		1, 0, 0, 1, 0,

		0, 1, 0, 0, 1,
		1, 0, 0, 1, 0,
		1, 1, 0, 1, 1,
	}

	gl.GenVertexArrays(1, &h.quadVAO)
	gl.BindVertexArray(h.quadVAO)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, uintptr(3*4))
	gl.BindVertexArray(0)
}

// AddText registers a debug line whose content is re-rendered each frame.
func (h *hud) AddText(content *string, fontSize float64, position mgl32.Vec2) {
	if !h.fontOK {
		return
	}
	h.texts = append(h.texts, &hudText{
		Texture:  h.newTextTexture(),
		Position: position,
		FontSize: fontSize,
		Content:  content,
	})
}

func (h *hud) newTextTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(h.canvas.Rect.Size().X), int32(h.canvas.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.canvas.Pix),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return texture
}

func (h *hud) redrawText(obj *hudText) {
	for i := range h.canvas.Pix {
		h.canvas.Pix[i] = 0
	}
	h.ctx.SetFontSize(obj.FontSize)

	baseline := fixed.Point26_6{
		X: h.ctx.PointToFixed(4),
		Y: h.ctx.PointToFixed(obj.FontSize),
	}
	if _, err := h.ctx.DrawString(*obj.Content, baseline); err != nil {
		uiLog.Printf("draw text: %v", err)
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, obj.Texture)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(h.canvas.Rect.Size().X), int32(h.canvas.Rect.Size().Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.canvas.Pix),
	)
}

// Draw renders the crosshair and, when enabled, every debug line.
func (h *hud) Draw() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.UseProgram(h.program)

	projection := mgl32.Ortho(0, float32(h.width), float32(h.height), 0, -1, 1)
	projectionLoc := gl.GetUniformLocation(h.program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionLoc, 1, false, &projection[0])

	h.drawCrosshair()

	if !h.enabled || !h.fontOK {
		return
	}
	for _, obj := range h.texts {
		h.redrawText(obj)

		model := mgl32.Translate3D(obj.Position[0], obj.Position[1], 0).Mul4(mgl32.Scale3D(512, 512, 1))
		modelLoc := gl.GetUniformLocation(h.program, gl.Str("model\x00"))
		gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])
		gl.Uniform1i(h.texLoc, 1)
		gl.Uniform4f(h.colorLoc, 1, 1, 1, 1)

		gl.BindTexture(gl.TEXTURE_2D, obj.Texture)
		gl.BindVertexArray(h.quadVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
}

// drawCrosshair draws two thin quads crossing at screen center.
func (h *hud) drawCrosshair() {
	cx := float32(h.width) / 2
	cy := float32(h.height) / 2
	modelLoc := gl.GetUniformLocation(h.program, gl.Str("model\x00"))
	gl.Uniform1i(h.texLoc, 0)
	gl.Uniform4f(h.colorLoc, 1, 1, 1, 0.8)
	gl.BindVertexArray(h.quadVAO)

	horizontal := mgl32.Translate3D(cx-10, cy-1, 0).Mul4(mgl32.Scale3D(20, 2, 1))
	gl.UniformMatrix4fv(modelLoc, 1, false, &horizontal[0])
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	vertical := mgl32.Translate3D(cx-1, cy-10, 0).Mul4(mgl32.Scale3D(2, 20, 1))
	gl.UniformMatrix4fv(modelLoc, 1, false, &vertical[0])
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
