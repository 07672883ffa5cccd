package platform

import "errors"

// WindowID is a platform-neutral window identifier. Zero means "no window".
type WindowID uint32

// None is the sentinel window handle.
const None WindowID = 0

var (
	// ErrConnectionClosed is returned by NextEvent once the display
	// connection is gone. It is never retried.
	ErrConnectionClosed = errors.New("display connection closed")
	// ErrNoScreen is returned when the display reports no usable screen.
	ErrNoScreen = errors.New("no screen found")
)

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Point is a position in root window coordinates.
type Point struct {
	X int
	Y int
}

// Screen describes the root window and its size in pixels.
type Screen struct {
	Root   WindowID
	Width  int
	Height int
}

// TopLevel is a direct child of the root as found at startup.
type TopLevel struct {
	Window           WindowID
	OverrideRedirect bool
}

// EventMask selects which notifications a window reports.
type EventMask uint32

const (
	EventMaskEnterWindow EventMask = 1 << iota
	EventMaskSubstructureNotify
)

// ChangeMask selects which fields of Changes are applied.
type ChangeMask uint8

const (
	ChangeX ChangeMask = 1 << iota
	ChangeY
	ChangeWidth
	ChangeHeight
	ChangeRaise
)

// Changes is a configure request. Only fields named in Mask are sent.
type Changes struct {
	Mask   ChangeMask
	X      int
	Y      int
	Width  int
	Height int
}

// Backend abstracts the display-server operations the window manager needs.
// Requests without a return value are fire-and-forget: a request aimed at a
// window that has since disappeared simply has no effect.
type Backend interface {
	Screen() Screen

	SetBorderColor(w WindowID, color uint32)
	SetBorderWidth(w WindowID, width int)
	SelectInput(w WindowID, mask EventMask)
	SetInputFocus(w WindowID)
	Configure(w WindowID, c Changes)
	MapWindow(w WindowID)
	KillClient(w WindowID)

	// Geometry and Pointer block on a server round-trip.
	Geometry(w WindowID) (Rect, error)
	Pointer(w WindowID) (Point, error)
	// TopLevels lists the root's existing children, bottom to top.
	TopLevels() ([]TopLevel, error)

	GrabButton(w WindowID, button int, mods uint16) error
	GrabPointer(w WindowID) error
	UngrabPointer()
	WarpPointer(w WindowID, x, y int)

	// NextEvent blocks until the next event arrives. It returns
	// ErrConnectionClosed when the connection breaks.
	NextEvent() (Event, error)
	Flush()
}
