package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"VoxelSandbox/config"
)

// maxPitch keeps the view matrix away from the straight-up/straight-down
// singularity while still preventing camera inversion.
const maxPitch = 89.9

// FirstPersonCamera owns the player's feet position, view orientation and
// velocity. It reads the voxel world for collision but never mutates it;
// without a world it falls back to a flat ground plane.
type FirstPersonCamera struct {
	position mgl32.Vec3 // feet
	velocity mgl32.Vec3
	yaw      float32 // degrees, -90 faces -Z
	pitch    float32 // degrees, clamped to +-maxPitch
	onGround bool
	flying   bool

	world   *VoxelWorld
	input   Input
	physics config.PhysicsSettings

	sensitivity float32
}

func NewFirstPersonCamera(world *VoxelWorld, input Input, settings config.Settings) *FirstPersonCamera {
	return &FirstPersonCamera{
		yaw:         -90.0,
		world:       world,
		input:       input,
		physics:     settings.Physics,
		sensitivity: settings.Input.MouseSensitivity,
	}
}

func (c *FirstPersonCamera) Position() mgl32.Vec3 { return c.position }
func (c *FirstPersonCamera) Velocity() mgl32.Vec3 { return c.velocity }
func (c *FirstPersonCamera) IsOnGround() bool     { return c.onGround }
func (c *FirstPersonCamera) IsFlying() bool       { return c.flying }
func (c *FirstPersonCamera) Yaw() float32         { return c.yaw }
func (c *FirstPersonCamera) Pitch() float32       { return c.pitch }

func (c *FirstPersonCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

func (c *FirstPersonCamera) ToggleFlying() {
	c.flying = !c.flying
	if c.flying {
		c.onGround = false
	}
}

// EyePosition is the camera location: feet plus the eye-height offset.
func (c *FirstPersonCamera) EyePosition() mgl32.Vec3 {
	return c.position.Add(mgl32.Vec3{0, c.physics.EyeHeight, 0})
}

// Front is the camera-forward unit vector derived from yaw and pitch.
func (c *FirstPersonCamera) Front() mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(c.yaw))
	pitchRad := float64(mgl32.DegToRad(c.pitch))
	return mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()
}

// horizontalFront is the walk direction: yaw only, pitch never tilts
// horizontal movement.
func (c *FirstPersonCamera) horizontalFront() mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(c.yaw))
	return mgl32.Vec3{float32(math.Cos(yawRad)), 0, float32(math.Sin(yawRad))}
}

func (c *FirstPersonCamera) right() mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(c.yaw))
	return mgl32.Vec3{float32(-math.Sin(yawRad)), 0, float32(math.Cos(yawRad))}
}

// ViewMatrix builds the look-at matrix for the renderer.
func (c *FirstPersonCamera) ViewMatrix() mgl32.Mat4 {
	return c.ViewMatrixFrom(c.position)
}

// ViewMatrixFrom builds the look-at matrix for an arbitrary feet
// position, used by the render loop to interpolate between ticks.
func (c *FirstPersonCamera) ViewMatrixFrom(feet mgl32.Vec3) mgl32.Mat4 {
	eye := feet.Add(mgl32.Vec3{0, c.physics.EyeHeight, 0})
	front := c.Front()
	up := c.right().Cross(front).Normalize()
	return mgl32.LookAtV(eye, eye.Add(front), up)
}

// Update advances the controller by one fixed tick: look, walk, jump,
// gravity, then collision resolution against the world.
func (c *FirstPersonCamera) Update(dt float32) {
	c.updateLook()
	c.updateWalk()

	jump := c.input.ConsumeJump()
	if jump && c.onGround && !c.flying {
		c.velocity[1] = c.physics.JumpSpeed
		c.onGround = false
	}

	if c.flying {
		c.velocity[1] = c.input.VerticalAxis() * c.physics.FlySpeed
	} else {
		c.velocity[1] += c.physics.Gravity * dt
	}

	c.moveWithCollision(c.velocity.Mul(dt))
}

func (c *FirstPersonCamera) updateLook() {
	dx, dy := c.input.LookDelta()
	c.yaw += dx * c.sensitivity
	c.pitch += dy * c.sensitivity

	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}
}

// updateWalk sets the horizontal velocity directly from the movement
// axes. No input means an instantaneous stop, there is no inertia.
func (c *FirstPersonCamera) updateWalk() {
	forward, strafe := c.input.MoveAxes()

	direction := c.horizontalFront().Mul(forward).Add(c.right().Mul(strafe))
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}

	speed := c.physics.WalkSpeed
	if c.input.Sprinting() {
		speed *= c.physics.RunMultiplier
	}
	if c.flying {
		speed = c.physics.FlySpeed
	}

	c.velocity[0] = direction.X() * speed
	c.velocity[2] = direction.Z() * speed
}
