package main

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"VoxelSandbox/config"
)

var mainLog = newPrefixLogger("[main] ")

// clickDelay rate-limits block edits so one press does not eat several
// blocks across frames.
const clickDelay = float32(1.0 / 8.0)

func main() {
	runtime.LockOSThread()

	settings, err := config.Load("settings.yaml")
	if err != nil {
		mainLog.Printf("falling back to default settings: %v", err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	window, err := glfw.CreateWindow(settings.Window.Width, settings.Window.Height, "Voxel Sandbox", nil, nil)
	if err != nil {
		panic(err)
	}
	window.SetAspectRatio(16, 9)
	window.MakeContextCurrent()
	if settings.Window.Vsync {
		glfw.SwapInterval(1)
	}

	renderer := NewRenderer(settings)
	sky := newSkyPass(settings.Assets.ShaderDir)
	overlay := newHud(settings)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		renderer.setProjection(width, height)
		overlay.setSize(width, height)
	})

	scene := NewScene()
	world := NewVoxelWorld(scene)
	defer world.Dispose()

	generateStart := time.Now()
	GenerateTerrain(world, settings.Terrain)
	mainLog.Printf("generated %d blocks in %.2fs", world.BlockCount(), time.Since(generateStart).Seconds())

	input := newGlfwInput(window)
	input.setLocked(true)
	camera := NewFirstPersonCamera(world, input, settings)
	camera.SetPosition(mgl32.Vec3{0.5, float32(settings.Terrain.Amplitude) + 8, 0.5})

	var (
		showDebug     = true
		monitor       *glfw.Monitor
		selectedBlock = DirtID
		clickTimer    = clickDelay
	)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		input.keyCallback(w, key, scancode, action, mods)
		if action != glfw.Press {
			return
		}
		switch {
		case key == glfw.KeyF3:
			showDebug = !showDebug
			overlay.enabled = showDebug
		case key == glfw.KeyF:
			camera.ToggleFlying()
		case key == glfw.KeyF11:
			if monitor == nil {
				monitor = glfw.GetPrimaryMonitor()
				mode := monitor.GetVideoMode()
				window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
			} else {
				mode := monitor.GetVideoMode()
				monitor = nil
				window.SetMonitor(nil, (mode.Width-settings.Window.Width)/2, (mode.Height-settings.Window.Height)/2, settings.Window.Width, settings.Window.Height, 0)
			}
		case key >= glfw.Key1 && key <= glfw.Key9:
			selectedBlock = uint8(key-glfw.Key1) + 1
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press || !input.PointerLocked() || clickTimer < clickDelay {
			return
		}
		clickTimer = 0
		if button == glfw.MouseButtonLeft {
			breakTargetedBlock(world, camera)
		}
		if button == glfw.MouseButtonRight {
			placeTargetedBlock(world, camera, selectedBlock)
		}
	})

	// Debug overlay lines, re-rendered from these strings every frame.
	var (
		fpsString      string
		posString      string
		velString      string
		groundedString string
		blockString    string
	)
	overlay.AddText(&fpsString, 24, mgl32.Vec2{10, 10})
	overlay.AddText(&posString, 24, mgl32.Vec2{10, 34})
	overlay.AddText(&velString, 24, mgl32.Vec2{10, 58})
	overlay.AddText(&groundedString, 24, mgl32.Vec2{10, 82})
	overlay.AddText(&blockString, 24, mgl32.Vec2{10, 106})

	var (
		tickInterval    = settings.TickInterval()
		tickAccumulator float32
		previousFrame   = time.Now()
		previousFeet    = camera.Position()
		frameCount      int
		fpsWindowStart  = time.Now()
	)

	for !window.ShouldClose() {
		gl.ClearColor(0.75, 0.85, 0.95, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		deltaTime := float32(time.Since(previousFrame).Seconds())
		previousFrame = time.Now()
		tickAccumulator += deltaTime
		clickTimer += deltaTime

		glfw.PollEvents()

		for tickAccumulator >= tickInterval {
			previousFeet = camera.Position()
			camera.Update(tickInterval)
			tickAccumulator -= tickInterval
		}

		alpha := tickAccumulator / tickInterval
		if alpha < 0 {
			alpha = 0
		}
		if alpha > 1 {
			alpha = 1
		}
		feet := lerp(previousFeet, camera.Position(), alpha)
		view := camera.ViewMatrixFrom(feet)

		sky.draw(renderer.projection, view)
		renderer.DrawScene(scene, view)

		frameCount++
		if elapsed := time.Since(fpsWindowStart); elapsed >= 250*time.Millisecond {
			fps := float64(frameCount) / elapsed.Seconds()
			fpsString = "FPS: " + strconv.FormatFloat(mgl64.Round(fps, 1), 'f', -1, 64)
			frameCount = 0
			fpsWindowStart = time.Now()
		}
		if showDebug {
			pos := camera.Position()
			vel := camera.Velocity()
			posString = fmt.Sprintf("Pos: %.1f, %.1f, %.1f", pos.X(), pos.Y(), pos.Z())
			velString = fmt.Sprintf("Vel: %.2f, %.2f, %.2f", vel.X(), vel.Y(), vel.Z())
			groundedString = "Grounded: " + strconv.FormatBool(camera.IsOnGround()) + "  Flying: " + strconv.FormatBool(camera.IsFlying())
			blockString = "Block: " + blockRegistry[selectedBlock].Name
		}
		overlay.Draw()

		window.SwapBuffers()
	}
}
