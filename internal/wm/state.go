package wm

import "github.com/1broseidon/swm/internal/platform"

// Mode is the pointer interaction currently in progress.
type Mode int

const (
	// Idle means no button is held on a managed window
	Idle Mode = iota
	// Moving means the primary button drags a window around
	Moving
	// Resizing means another button drags the bottom-right corner
	Resizing
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// FocusMode selects the border color applied by the focus controller.
type FocusMode int

const (
	// Inactive recolors a window unfocused and moves no input focus
	Inactive FocusMode = iota
	// Active recolors a window focused and gives it input focus
	Active
)

// Drag is the interaction mode plus the reference data it needs. Window,
// Pointer and Geometry are meaningful only while Mode is not Idle.
type Drag struct {
	Mode     Mode
	Window   platform.WindowID
	Pointer  platform.Point
	Geometry platform.Rect
}

// State is the mutable window manager state. It is owned by the dispatch
// loop and handed to each handler by pointer; nothing else keeps a copy.
type State struct {
	Focused platform.WindowID
	Drag    Drag
}

// NewState creates an idle state with nothing focused
func NewState() *State {
	return &State{}
}

// Dragging reports whether a move or resize is in progress.
func (s *State) Dragging() bool {
	return s.Drag.Mode != Idle
}

// ResetDrag returns the interaction mode to Idle.
func (s *State) ResetDrag() {
	s.Drag = Drag{}
}
