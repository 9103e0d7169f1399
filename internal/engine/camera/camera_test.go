package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// vecNear compares per component with an absolute tolerance. The relative
// FloatEqualThreshold is too strict against zero.
func vecNear(a, b mgl32.Vec3) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}

func TestNewFacesNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, -90, 0)
	if !vecNear(c.Front, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("front = %v, want (0,0,-1)", c.Front)
	}
	if c.Tracking() {
		t.Error("new camera should not be tracking the mouse yet")
	}
}

func TestFirstMouseSampleDoesNotRotate(t *testing.T) {
	c := New(mgl32.Vec3{}, -90, 0)
	c.Look(1000, 500)

	if !c.Tracking() {
		t.Fatal("expected tracking after first sample")
	}
	if c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("first sample rotated camera: yaw=%f pitch=%f", c.Yaw, c.Pitch)
	}

	c.Look(1010, 480)
	if !mgl32.FloatEqualThreshold(c.Yaw, -89, eps) {
		t.Errorf("yaw = %f, want -89", c.Yaw)
	}
	// Moving up the screen (smaller y) pitches up.
	if !mgl32.FloatEqualThreshold(c.Pitch, 2, eps) {
		t.Errorf("pitch = %f, want 2", c.Pitch)
	}
	if !c.Tracking() {
		t.Error("tracking state must never be left")
	}
}

func TestPitchClamped(t *testing.T) {
	c := New(mgl32.Vec3{}, -90, 0)
	c.Look(0, 0)
	c.Look(0, -100000)
	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, MaxPitch)
	}
	c.Look(0, 100000)
	if c.Pitch != -MaxPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, -MaxPitch)
	}
}

func TestPitchStaysInRangeForRandomDeltas(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := New(mgl32.Vec3{}, -90, 0)

	x, y := 0.0, 0.0
	for i := 0; i < 10000; i++ {
		x += rng.NormFloat64() * 400
		y += rng.NormFloat64() * 400
		c.Look(x, y)
		if c.Pitch < -MaxPitch || c.Pitch > MaxPitch {
			t.Fatalf("step %d: pitch %f out of range", i, c.Pitch)
		}
		if l := c.Front.Len(); !mgl32.FloatEqualThreshold(l, 1, eps) {
			t.Fatalf("step %d: front not normalized (len %f)", i, l)
		}
	}
}

func TestYawUnbounded(t *testing.T) {
	c := New(mgl32.Vec3{}, 0, 0)
	c.Rotate(720, 0)
	if c.Yaw != 720 {
		t.Errorf("yaw = %f, want 720", c.Yaw)
	}
	// Two full turns point the same way as the start.
	if !vecNear(c.Front, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("front = %v, want (1,0,0)", c.Front)
	}
}

func TestMove(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, -90, 0)
	c.Speed = 5

	c.Move(Controls{Forward: true}, 0.2)
	if !vecNear(c.Position, mgl32.Vec3{0, 0, 2}) {
		t.Errorf("after forward: %v, want (0,0,2)", c.Position)
	}

	c.Move(Controls{Right: true}, 0.2)
	if !vecNear(c.Position, mgl32.Vec3{1, 0, 2}) {
		t.Errorf("after right: %v, want (1,0,2)", c.Position)
	}

	c.Move(Controls{Left: true, Backward: true}, 0.2)
	if !vecNear(c.Position, mgl32.Vec3{0, 0, 3}) {
		t.Errorf("after left+back: %v, want (0,0,3)", c.Position)
	}

	c.Move(Controls{Forward: true, Backward: true}, 1)
	if !vecNear(c.Position, mgl32.Vec3{0, 0, 3}) {
		t.Errorf("opposite keys should cancel: %v", c.Position)
	}
}

func TestViewMatrix(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, -90, 0)
	view := c.ViewMatrix()

	// The camera position maps to the view-space origin.
	p := view.Mul4x1(c.Position.Vec4(1)).Vec3()
	if !vecNear(p, mgl32.Vec3{}) {
		t.Errorf("camera position in view space = %v", p)
	}

	// A point straight ahead lands on -Z.
	ahead := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	if !vecNear(ahead, mgl32.Vec3{0, 0, -3}) {
		t.Errorf("origin in view space = %v, want (0,0,-3)", ahead)
	}
}

func TestSkyboxViewHasNoTranslation(t *testing.T) {
	c := New(mgl32.Vec3{10, -4, 7}, 30, 20)
	sky := c.SkyboxView()

	if sky.At(0, 3) != 0 || sky.At(1, 3) != 0 || sky.At(2, 3) != 0 {
		t.Errorf("skybox view keeps translation: %v", sky.Col(3))
	}
	if sky.At(3, 3) != 1 {
		t.Errorf("skybox view w = %f", sky.At(3, 3))
	}

	view := c.ViewMatrix()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if sky.At(row, col) != view.At(row, col) {
				t.Fatalf("rotation differs at (%d,%d)", row, col)
			}
		}
	}
}

func TestProjectionGuardsAspect(t *testing.T) {
	c := New(mgl32.Vec3{}, -90, 0)
	if c.Projection(0) != c.Projection(1) {
		t.Error("non-positive aspect should fall back to 1")
	}
	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)
	if c.Projection(16.0/9.0) != want {
		t.Error("unexpected projection")
	}
}
