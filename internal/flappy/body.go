package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Body is the bird: a fixed horizontal position and a vertical
// position/velocity pair integrated against elapsed time.
type Body struct {
	X, Y      float64 // Top-left of the hitbox
	W, H      float64 // Hitbox size
	VelocityY float64 // Positive = down

	gravity     float64
	flapImpulse float64
	frameRefMs  float64
	xRatio      float64
}

// NewBody creates a body with the given physics and hitbox parameters.
func NewBody(phys config.FlappyPhysics, player config.FlappyPlayer) *Body {
	return &Body{
		W:           player.Width,
		H:           player.Height,
		gravity:     phys.Gravity,
		flapImpulse: phys.FlapImpulse,
		frameRefMs:  phys.FrameReferenceMs,
		xRatio:      player.XRatio,
	}
}

// Reset places the body at its start position for the given field.
func (b *Body) Reset(field core.Field) {
	b.X = field.Width * b.xRatio
	b.Y = field.Height / 2
	b.VelocityY = 0
}

// Integrate advances velocity then position by deltaMs of elapsed time,
// normalized so one reference frame applies one unit of gravity.
func (b *Body) Integrate(deltaMs float64) {
	frames := deltaMs / b.frameRefMs
	b.VelocityY += b.gravity * frames
	b.Y += b.VelocityY * frames
}

// Flap replaces the current velocity with the upward impulse.
func (b *Body) Flap() {
	b.VelocityY = b.flapImpulse
}

// Rect returns the body's hitbox.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}
