package platform

// Event is one notification from the display server. The concrete types
// below are the only implementations.
type Event interface {
	isEvent()
}

// CreateEvent reports a new window. Parent is the window it was created in.
type CreateEvent struct {
	Parent           WindowID
	Window           WindowID
	OverrideRedirect bool
}

// DestroyEvent reports a destroyed window. Parent is the window whose
// substructure reported it.
type DestroyEvent struct {
	Parent WindowID
	Window WindowID
}

// EnterEvent reports the pointer entering a window.
type EnterEvent struct {
	Window WindowID
}

// MapEvent reports a window becoming visible.
type MapEvent struct {
	Parent           WindowID
	Window           WindowID
	OverrideRedirect bool
}

// ButtonPressEvent reports a grabbed button press. Window is the top-level
// window under the pointer, or None over the bare root.
type ButtonPressEvent struct {
	Window WindowID
	Button int
}

// MotionEvent reports pointer motion while the pointer is grabbed.
type MotionEvent struct {
	RootX int
	RootY int
}

// ButtonReleaseEvent reports a button release while the pointer is grabbed.
type ButtonReleaseEvent struct {
	Button int
}

// ConfigureEvent reports an external geometry or stacking change.
type ConfigureEvent struct {
	Parent           WindowID
	Window           WindowID
	OverrideRedirect bool
}

// OtherEvent is any notification the window manager does not act on.
type OtherEvent struct {
	Kind string
}

func (CreateEvent) isEvent()        {}
func (DestroyEvent) isEvent()       {}
func (EnterEvent) isEvent()         {}
func (MapEvent) isEvent()           {}
func (ButtonPressEvent) isEvent()   {}
func (MotionEvent) isEvent()        {}
func (ButtonReleaseEvent) isEvent() {}
func (ConfigureEvent) isEvent()     {}
func (OtherEvent) isEvent()         {}
