// Package camera provides the first-person fly camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the camera from flipping over the vertical axis (degrees).
const MaxPitch = 89.0

// Controls is the set of movement keys held during a frame.
type Controls struct {
	Forward, Backward, Left, Right bool
}

// FlyCamera looks around with the mouse and moves along its front/right axes.
// Angles are in degrees. Yaw is unbounded; pitch is clamped to ±MaxPitch.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float32
	Pitch float32

	Speed       float32 // units per second
	Sensitivity float32 // degrees per pixel

	FOV       float32 // vertical, degrees
	Near, Far float32

	// Mouse tracking: until the first sample arrives there is no previous
	// position to diff against.
	tracking     bool
	lastX, lastY float64
}

// New creates a camera at pos facing the direction given by yaw and pitch.
func New(pos mgl32.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Position:    pos,
		Up:          mgl32.Vec3{0, 1, 0},
		Yaw:         yaw,
		Pitch:       clampPitch(pitch),
		Speed:       5,
		Sensitivity: 0.1,
		FOV:         45,
		Near:        0.1,
		Far:         100,
	}
	c.updateFront()
	return c
}

// Tracking reports whether a mouse sample has been seen.
func (c *FlyCamera) Tracking() bool {
	return c.tracking
}

// Look feeds an absolute cursor position. The first sample only primes the
// tracker; later samples turn the camera by the delta since the previous one.
// Moving the cursor up (smaller y) pitches up.
func (c *FlyCamera) Look(x, y float64) {
	if !c.tracking {
		c.lastX, c.lastY = x, y
		c.tracking = true
	}

	dx := float32(x-c.lastX) * c.Sensitivity
	dy := float32(c.lastY-y) * c.Sensitivity
	c.lastX, c.lastY = x, y

	c.Rotate(dx, dy)
}

// Rotate adds yaw and pitch offsets in degrees.
func (c *FlyCamera) Rotate(yawDelta, pitchDelta float32) {
	c.Yaw += yawDelta
	c.Pitch = clampPitch(c.Pitch + pitchDelta)
	c.updateFront()
}

// Move translates the camera by speed*dt along front and right for each held key.
func (c *FlyCamera) Move(ctl Controls, dt float32) {
	step := c.Speed * dt
	right := c.Right()

	if ctl.Forward {
		c.Position = c.Position.Add(c.Front.Mul(step))
	}
	if ctl.Backward {
		c.Position = c.Position.Sub(c.Front.Mul(step))
	}
	if ctl.Left {
		c.Position = c.Position.Sub(right.Mul(step))
	}
	if ctl.Right {
		c.Position = c.Position.Add(right.Mul(step))
	}
}

// Right is the normalized camera right axis.
func (c *FlyCamera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// ViewMatrix looks from the camera position along Front.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// SkyboxView is the view matrix with its translation removed, so the
// skybox stays centred on the camera.
func (c *FlyCamera) SkyboxView() mgl32.Mat4 {
	return c.ViewMatrix().Mat3().Mat4()
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *FlyCamera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

func (c *FlyCamera) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}
