// Package input translates SDL2 events into simulator actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventAction
)

// Action is a discrete command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionCutMode
	ActionCurveMode
	ActionClearCurve
	ActionReset
	ActionMaterial1
	ActionMaterial2
)

// DefaultBindings maps keys to actions.
var DefaultBindings = map[sdl.Scancode]Action{
	sdl.SCANCODE_ESCAPE: ActionQuit,
	sdl.SCANCODE_C:      ActionCutMode,
	sdl.SCANCODE_B:      ActionCurveMode,
	sdl.SCANCODE_X:      ActionClearCurve,
	sdl.SCANCODE_R:      ActionReset,
	sdl.SCANCODE_1:      ActionMaterial1,
	sdl.SCANCODE_2:      ActionMaterial2,
}

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Action Action
	Width  int
	Height int
	X, Y   float64 // pointer position in window coordinates
	Button uint8
}

// Input polls SDL and buffers the events of one frame.
type Input struct {
	bindings map[sdl.Scancode]Action
	events   []Event
}

// New creates an input handler using DefaultBindings.
func New() *Input {
	return &Input{
		bindings: DefaultBindings,
		events:   make([]Event, 0, 32),
	}
}

// Update polls SDL events and converts them. Events keep their arrival
// order. It returns true if a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := i.translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit || ev.Action == ActionQuit {
			quit = true
		}
	}
	return quit
}

func (i *Input) translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return Event{}, false
		}
		if a := Lookup(i.bindings, e.Keysym.Scancode); a != ActionNone {
			return Event{Type: EventAction, Action: a}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{Type: EventPointerMove, X: float64(e.X), Y: float64(e.Y)}, true

	case *sdl.MouseButtonEvent:
		t := EventPointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventPointerDown
		}
		return Event{Type: t, X: float64(e.X), Y: float64(e.Y), Button: e.Button}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Lookup returns the action bound to a key, or ActionNone.
func Lookup(bindings map[sdl.Scancode]Action, key sdl.Scancode) Action {
	return bindings[key]
}
