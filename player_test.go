package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VoxelSandbox/config"
)

// scriptedInput drives the controller in tests without a window.
type scriptedInput struct {
	forward, strafe float32
	lookDX, lookDY  float32
	vertical        float32
	jump            bool
	sprint          bool
}

func (s *scriptedInput) MoveAxes() (float32, float32) { return s.forward, s.strafe }

func (s *scriptedInput) LookDelta() (float32, float32) {
	dx, dy := s.lookDX, s.lookDY
	s.lookDX, s.lookDY = 0, 0
	return dx, dy
}

func (s *scriptedInput) ConsumeJump() bool {
	jump := s.jump
	s.jump = false
	return jump
}

func (s *scriptedInput) VerticalAxis() float32 { return s.vertical }
func (s *scriptedInput) Sprinting() bool       { return s.sprint }
func (s *scriptedInput) PointerLocked() bool   { return true }

func newTestCamera(world *VoxelWorld) *FirstPersonCamera {
	return NewFirstPersonCamera(world, &scriptedInput{}, config.Default())
}

func newScriptedCamera(world *VoxelWorld) (*FirstPersonCamera, *scriptedInput) {
	input := &scriptedInput{}
	camera := NewFirstPersonCamera(world, input, config.Default())
	return camera, input
}

const testTick = float32(1.0 / 60.0)

func runTicks(camera *FirstPersonCamera, n int) {
	for i := 0; i < n; i++ {
		camera.Update(testTick)
	}
}

func TestFallOntoSingleBlock(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(0, 0, 0, StoneID)

	camera, _ := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 3, 0.5})

	runTicks(camera, 180)

	require.True(t, camera.IsOnGround())
	assert.InDelta(t, 1.0, float64(camera.Position().Y()), 1e-5)
	assert.Zero(t, camera.Velocity().Y())
}

func TestPlatformDropScenario(t *testing.T) {
	// 3x3 flat platform, drop from height 5 above the center block.
	world, _ := newTestWorld()
	GeneratePlatform(world, 1, 0, GrassID)

	camera, _ := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 5, 0.5})

	for i := 0; i < 600 && !camera.IsOnGround(); i++ {
		camera.Update(testTick)
	}

	require.True(t, camera.IsOnGround())
	assert.InDelta(t, 1.0, float64(camera.Position().Y()), 1e-5)
	assert.Zero(t, camera.Velocity().Y())
}

func TestWallStop(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(1, 0, 0, StoneID)

	camera, input := newScriptedCamera(world)
	camera.flying = true // keeps the test purely horizontal
	camera.SetPosition(mgl32.Vec3{0.2, 0, 0.5})
	camera.yaw = 0 // face +X
	input.forward = 1

	halfWidth := config.Default().Physics.PlayerWidth / 2
	for i := 0; i < 120; i++ {
		camera.Update(testTick)
		leadingEdge := camera.Position().X() + halfWidth
		require.LessOrEqual(t, leadingEdge, float32(1.0)+1e-4)
	}

	// The box converges to contact with the wall face at x=1.
	walkStep := config.Default().Physics.FlySpeed * testTick
	assert.Greater(t, camera.Position().X()+halfWidth, 1.0-2*walkStep)
	assert.Zero(t, camera.Velocity().X())
}

func TestDiagonalMovementSlidesAlongWall(t *testing.T) {
	world, _ := newTestWorld()
	// A wall of blocks at x=1 spanning the player's path in z.
	for z := -2; z <= 12; z++ {
		world.SetBlock(1, 0, z, StoneID)
		world.SetBlock(1, 1, z, StoneID)
	}

	camera, input := newScriptedCamera(world)
	camera.flying = true
	camera.SetPosition(mgl32.Vec3{0.2, 0.2, 0.5})
	camera.yaw = 0 // face +X
	input.forward = 1
	input.strafe = 1 // diagonal: into the wall and along it

	startZ := camera.Position().Z()
	runTicks(camera, 40)

	halfWidth := config.Default().Physics.PlayerWidth / 2
	assert.LessOrEqual(t, camera.Position().X()+halfWidth, float32(1.0)+1e-4)
	assert.Greater(t, camera.Position().Z(), startZ+0.5, "movement should slide along the wall")
}

func TestCeilingBump(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(0, 0, 0, StoneID) // floor
	world.SetBlock(0, 3, 0, StoneID) // ceiling at y in [3, 4)

	camera, input := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 1.05, 0.5})
	runTicks(camera, 60) // settle onto the floor
	require.True(t, camera.IsOnGround())

	input.jump = true
	camera.Update(testTick)
	runTicks(camera, 30)

	// Head never passes the ceiling underside.
	height := config.Default().Physics.PlayerHeight
	assert.LessOrEqual(t, camera.Position().Y()+height, float32(3.0)+1e-4)
}

func TestTinyAscentDoesNotSnapIntoFloor(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(0, 0, 0, StoneID)

	camera := newTestCamera(world)
	// Feet within the ground probe of the block top, moving up by less
	// than the probe, as a very high tick rate produces at the start of
	// a jump.
	camera.SetPosition(mgl32.Vec3{0.5, 1.0005, 0.5})
	camera.moveWithCollision(mgl32.Vec3{0, 0.0004, 0})

	assert.GreaterOrEqual(t, camera.Position().Y(), float32(1.0))
	assert.False(t, camera.IsOnGround())
}

func TestJumpConsumedOnce(t *testing.T) {
	world, _ := newTestWorld()
	world.SetBlock(0, 0, 0, StoneID)

	camera, input := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 1, 0.5})
	runTicks(camera, 10)
	require.True(t, camera.IsOnGround())

	input.jump = true
	camera.Update(testTick)
	assert.False(t, camera.IsOnGround())
	assert.Positive(t, camera.Velocity().Y())

	// The flag was consumed; it does not re-fire while airborne.
	assert.False(t, input.jump)
}

func TestHorizontalStopIsInstant(t *testing.T) {
	world, _ := newTestWorld()
	GeneratePlatform(world, 4, 0, GrassID)

	camera, input := newScriptedCamera(world)
	camera.SetPosition(mgl32.Vec3{0.5, 1, 0.5})
	input.forward = 1
	runTicks(camera, 30)
	require.NotZero(t, camera.Velocity().X()*camera.Velocity().X()+camera.Velocity().Z()*camera.Velocity().Z())

	input.forward = 0
	camera.Update(testTick)
	assert.Zero(t, camera.Velocity().X())
	assert.Zero(t, camera.Velocity().Z())
}

func TestPitchClamped(t *testing.T) {
	camera, input := newScriptedCamera(nil)

	input.lookDY = 10000
	camera.Update(testTick)
	assert.LessOrEqual(t, camera.Pitch(), float32(90.0))

	input.lookDY = -20000
	camera.Update(testTick)
	assert.GreaterOrEqual(t, camera.Pitch(), float32(-90.0))
}

func TestFlatGroundFallbackWithoutWorld(t *testing.T) {
	camera, _ := newScriptedCamera(nil)
	camera.SetPosition(mgl32.Vec3{3, 2, -4})

	runTicks(camera, 180)

	require.True(t, camera.IsOnGround())
	assert.Zero(t, camera.Position().Y())
	assert.Zero(t, camera.Velocity().Y())
}

func TestEyePositionOffset(t *testing.T) {
	camera, _ := newScriptedCamera(nil)
	camera.SetPosition(mgl32.Vec3{1, 2, 3})

	eye := camera.EyePosition()
	assert.Equal(t, float32(1), eye.X())
	assert.InDelta(t, float64(2+config.Default().Physics.EyeHeight), float64(eye.Y()), 1e-6)
	assert.Equal(t, float32(3), eye.Z())
}

func TestMovementDirectionFollowsYawNotPitch(t *testing.T) {
	camera, input := newScriptedCamera(nil)
	camera.yaw = 0
	camera.pitch = 60 // looking up must not slow walking

	input.forward = 1
	camera.Update(testTick)

	walk := config.Default().Physics.WalkSpeed
	assert.InDelta(t, float64(walk), float64(camera.Velocity().X()), 1e-4)
	assert.InDelta(t, 0, float64(camera.Velocity().Z()), 1e-4)
}
