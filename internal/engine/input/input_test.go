package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skyview/internal/engine/camera"
)

func key(t uint32, sc sdl.Scancode) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: t, Keysym: sdl.Keysym{Scancode: sc}}
}

func TestTranslate(t *testing.T) {
	in := New()

	tests := []struct {
		name string
		ev   sdl.Event
		want EventType
		ok   bool
	}{
		{"quit", &sdl.QuitEvent{}, EventQuit, true},
		{"key down", key(sdl.KEYDOWN, sdl.SCANCODE_UP), EventKeyDown, true},
		{"key up", key(sdl.KEYUP, sdl.SCANCODE_UP), EventKeyUp, true},
		{"resize", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600}, EventWindowResize, true},
		{"focus ignored", &sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_GAINED}, EventNone, false},
		{"motion", &sdl.MouseMotionEvent{XRel: 3, YRel: -2}, EventMouseMove, true},
		{"button ignored", &sdl.MouseButtonEvent{}, EventNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := in.Translate(tt.ev)
			if ok != tt.ok || e.Type != tt.want {
				t.Errorf("Translate = (%v, %v), want (%v, %v)", e.Type, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMouseMotionAccumulates(t *testing.T) {
	in := New()
	in.Translate(&sdl.MouseMotionEvent{XRel: 10, YRel: 5})
	e, _ := in.Translate(&sdl.MouseMotionEvent{XRel: -3, YRel: 5})

	if e.MouseX != 7 || e.MouseY != 10 {
		t.Errorf("cursor = (%v, %v), want (7, 10)", e.MouseX, e.MouseY)
	}
}

func TestStateArrows(t *testing.T) {
	s := NewState()
	s.Apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_UP})
	s.Apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_LEFT})

	want := camera.Controls{Forward: true, Left: true}
	if got := s.Arrows(); got != want {
		t.Errorf("Arrows = %+v, want %+v", got, want)
	}

	s.Apply(Event{Type: EventKeyUp, Key: sdl.SCANCODE_UP})
	want = camera.Controls{Left: true}
	if got := s.Arrows(); got != want {
		t.Errorf("after release Arrows = %+v, want %+v", got, want)
	}
	if s.Held(sdl.SCANCODE_UP) {
		t.Error("released key still held")
	}
}

func TestStateCloseRequests(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"escape", Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE}, true},
		{"quit", Event{Type: EventQuit}, true},
		{"other key", Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE}, false},
		{"escape release", Event{Type: EventKeyUp, Key: sdl.SCANCODE_ESCAPE}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Apply(tt.ev)
			if got := s.CloseRequested(); got != tt.want {
				t.Errorf("CloseRequested = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateTakeCursorAndResize(t *testing.T) {
	s := NewState()
	if _, _, moved := s.TakeCursor(); moved {
		t.Error("cursor reported moved before any motion")
	}

	s.Apply(Event{Type: EventMouseMove, MouseX: 4, MouseY: 2})
	s.Apply(Event{Type: EventMouseMove, MouseX: 6, MouseY: 1})
	x, y, moved := s.TakeCursor()
	if !moved || x != 6 || y != 1 {
		t.Errorf("TakeCursor = (%v, %v, %v), want (6, 1, true)", x, y, moved)
	}
	if _, _, moved := s.TakeCursor(); moved {
		t.Error("cursor movement should be consumed")
	}

	s.Apply(Event{Type: EventWindowResize, Width: 640, Height: 480})
	w, h, resized := s.TakeResize()
	if !resized || w != 640 || h != 480 {
		t.Errorf("TakeResize = (%d, %d, %v)", w, h, resized)
	}
	if _, _, resized := s.TakeResize(); resized {
		t.Error("resize should be consumed")
	}
}
