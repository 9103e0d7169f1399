package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/skyview/internal/engine/camera"
)

// State is the input state the frame update reads: held keys, the latest
// cursor position and whether the window should close.
type State struct {
	held map[sdl.Scancode]bool

	closeRequested bool

	cursorMoved      bool
	cursorX, cursorY float64

	resized       bool
	width, height int
}

// NewState returns an empty state.
func NewState() *State {
	return &State{held: make(map[sdl.Scancode]bool)}
}

// Apply folds one event into the state. Escape and quit both request close.
func (s *State) Apply(e Event) {
	switch e.Type {
	case EventQuit:
		s.closeRequested = true
	case EventKeyDown:
		s.held[e.Key] = true
		if e.Key == sdl.SCANCODE_ESCAPE {
			s.closeRequested = true
		}
	case EventKeyUp:
		delete(s.held, e.Key)
	case EventMouseMove:
		s.cursorMoved = true
		s.cursorX, s.cursorY = e.MouseX, e.MouseY
	case EventWindowResize:
		s.resized = true
		s.width, s.height = e.Width, e.Height
	}
}

// Held reports whether a key is down.
func (s *State) Held(key sdl.Scancode) bool {
	return s.held[key]
}

// Arrows maps the held arrow keys to camera movement.
func (s *State) Arrows() camera.Controls {
	return camera.Controls{
		Forward:  s.held[sdl.SCANCODE_UP],
		Backward: s.held[sdl.SCANCODE_DOWN],
		Left:     s.held[sdl.SCANCODE_LEFT],
		Right:    s.held[sdl.SCANCODE_RIGHT],
	}
}

// CloseRequested reports whether quit or Escape has been seen.
func (s *State) CloseRequested() bool {
	return s.closeRequested
}

// TakeCursor returns the cursor position if it moved since the last call.
func (s *State) TakeCursor() (x, y float64, moved bool) {
	moved = s.cursorMoved
	s.cursorMoved = false
	return s.cursorX, s.cursorY, moved
}

// TakeResize returns the new window size if it changed since the last call.
func (s *State) TakeResize() (width, height int, resized bool) {
	resized = s.resized
	s.resized = false
	return s.width, s.height, resized
}
