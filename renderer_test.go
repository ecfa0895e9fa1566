package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSetProjectionTracksFramebufferSize(t *testing.T) {
	r := &Renderer{}

	r.setProjection(1600, 900)
	want := mgl32.Perspective(mgl32.DegToRad(70), 1600.0/900.0, 0.1, 350)
	assert.Equal(t, want, r.projection)

	// A fullscreen toggle with a different aspect must be picked up.
	r.setProjection(2560, 1080)
	want = mgl32.Perspective(mgl32.DegToRad(70), 2560.0/1080.0, 0.1, 350)
	assert.Equal(t, want, r.projection)
}

func TestHudTracksFramebufferSize(t *testing.T) {
	h := &hud{width: 1600, height: 900}

	h.setSize(2560, 1080)
	assert.Equal(t, 2560, h.width)
	assert.Equal(t, 1080, h.height)
}
