package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input is what the controller polls every frame. Queries are pure except
// ConsumeJump, which is explicitly read-and-clear so a held jump key does
// not repeat-fire.
type Input interface {
	// MoveAxes returns the forward and strafe axes in [-1, 1].
	MoveAxes() (forward, strafe float32)
	// LookDelta returns and clears the camera delta accumulated since the
	// previous frame (mouse movement while the pointer is locked, or a
	// touch drag).
	LookDelta() (dx, dy float32)
	// ConsumeJump reports a pending jump trigger and clears it.
	ConsumeJump() bool
	// VerticalAxis is the fly up/down axis in [-1, 1].
	VerticalAxis() float32
	Sprinting() bool
	PointerLocked() bool
}

// glfwInput polls a glfw window. Key state is sampled each frame for fast
// response; only look deltas and the jump edge arrive through callbacks.
type glfwInput struct {
	window *glfw.Window

	lastX, lastY float64
	firstMouse   bool
	pendingDX    float32
	pendingDY    float32

	jumpQueued bool
	locked     bool
}

func newGlfwInput(window *glfw.Window) *glfwInput {
	in := &glfwInput{window: window, firstMouse: true, locked: true}
	window.SetCursorPosCallback(in.cursorPosCallback)
	return in
}

func (in *glfwInput) cursorPosCallback(window *glfw.Window, xPos, yPos float64) {
	if in.firstMouse {
		in.lastX = xPos
		in.lastY = yPos
		in.firstMouse = false
	}

	in.pendingDX += float32(xPos - in.lastX)
	in.pendingDY += float32(in.lastY - yPos) // reversed: screen y grows downward
	in.lastX = xPos
	in.lastY = yPos
}

// keyCallback handles edge-triggered keys; held movement keys are polled
// in MoveAxes instead.
func (in *glfwInput) keyCallback(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && key == glfw.KeySpace {
		in.jumpQueued = true
	}
	if action == glfw.Press && key == glfw.KeyEscape {
		in.setLocked(!in.locked)
	}
}

func (in *glfwInput) setLocked(locked bool) {
	in.locked = locked
	if locked {
		in.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		in.firstMouse = true
	} else {
		in.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (in *glfwInput) MoveAxes() (float32, float32) {
	var forward, strafe float32
	if in.window.GetKey(glfw.KeyW) == glfw.Press {
		forward++
	}
	if in.window.GetKey(glfw.KeyS) == glfw.Press {
		forward--
	}
	if in.window.GetKey(glfw.KeyD) == glfw.Press {
		strafe++
	}
	if in.window.GetKey(glfw.KeyA) == glfw.Press {
		strafe--
	}
	return forward, strafe
}

func (in *glfwInput) LookDelta() (float32, float32) {
	if !in.locked {
		in.pendingDX, in.pendingDY = 0, 0
		return 0, 0
	}
	dx, dy := in.pendingDX, in.pendingDY
	in.pendingDX, in.pendingDY = 0, 0
	return dx, dy
}

func (in *glfwInput) ConsumeJump() bool {
	queued := in.jumpQueued
	in.jumpQueued = false
	return queued
}

func (in *glfwInput) VerticalAxis() float32 {
	var axis float32
	if in.window.GetKey(glfw.KeySpace) == glfw.Press {
		axis++
	}
	if in.window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		axis--
	}
	return axis
}

func (in *glfwInput) Sprinting() bool {
	return in.window.GetKey(glfw.KeyLeftShift) == glfw.Press
}

func (in *glfwInput) PointerLocked() bool {
	return in.locked
}
