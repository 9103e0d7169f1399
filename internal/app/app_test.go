package app

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"

	"github.com/Faultbox/skyview/internal/config"
)

func TestReleaseStackOrder(t *testing.T) {
	var s releaseStack
	var got []string
	for _, name := range []string{"window", "shader", "skybox", "model"} {
		s.push(name, func() { got = append(got, name) })
	}

	if err := s.releaseAll(); err != nil {
		t.Fatalf("releaseAll: %v", err)
	}

	want := []string{"model", "skybox", "shader", "window"}
	if len(got) != len(want) {
		t.Fatalf("released %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("release[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if s.len() != 0 {
		t.Errorf("stack not emptied: %d left", s.len())
	}
}

func TestReleaseStackCombinesErrors(t *testing.T) {
	var s releaseStack
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	ran := 0

	s.pushErr("a", func() error { ran++; return errA })
	s.push("ok", func() { ran++ })
	s.pushErr("b", func() error { ran++; return errB })

	err := s.releaseAll()
	if ran != 3 {
		t.Errorf("ran %d release funcs, want 3", ran)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("error = %v, want both failures", err)
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("combined %d errors, want 2", n)
	}
}

func TestReleaseAllTwiceIsNoop(t *testing.T) {
	var s releaseStack
	calls := 0
	s.push("x", func() { calls++ })
	_ = s.releaseAll()
	_ = s.releaseAll()
	if calls != 1 {
		t.Errorf("release ran %d times, want 1", calls)
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Speed = 7
	cfg.FOV = 60

	c := newCamera(cfg)
	if c.Position != mgl32.Vec3(cfg.Position) {
		t.Errorf("position = %v, want %v", c.Position, cfg.Position)
	}
	if c.Speed != 7 || c.FOV != 60 {
		t.Errorf("speed=%v fov=%v", c.Speed, c.FOV)
	}
	if c.Sensitivity != cfg.Sensitivity || c.Near != cfg.Near || c.Far != cfg.Far {
		t.Error("camera tuning not copied from config")
	}
}
