// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for the render loop
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	// Cursor position accumulated from relative motion. With the mouse
	// captured SDL reports only deltas.
	MouseX float64
	MouseY float64
}

// Input handles all input processing.
type Input struct {
	events           []Event
	cursorX, cursorY float64
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to events.
// Returns true if a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := i.Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}

	return quit
}

// Translate converts one SDL event. It reports false for events the loop ignores.
func (i *Input) Translate(event sdl.Event) (Event, bool) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_RESIZED || ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(ev.Data1),
				Height: int(ev.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		k := Event{Key: ev.Keysym.Scancode, Repeat: ev.Repeat != 0}
		switch ev.Type {
		case sdl.KEYDOWN:
			k.Type = EventKeyDown
			return k, true
		case sdl.KEYUP:
			k.Type = EventKeyUp
			return k, true
		}

	case *sdl.MouseMotionEvent:
		i.cursorX += float64(ev.XRel)
		i.cursorY += float64(ev.YRel)
		return Event{
			Type:   EventMouseMove,
			MouseX: i.cursorX,
			MouseY: i.cursorY,
		}, true
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key went down this frame.
// Auto-repeat does not count.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}
