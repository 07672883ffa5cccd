//go:build linux

package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/1broseidon/swm/internal/x11"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection to display
// ($DISPLAY when empty).
func NewLinuxBackendFromDisplay(display string, logger *slog.Logger) (*LinuxBackend, error) {
	conn, err := x11.NewConnection(display, logger)
	if err != nil {
		if errors.Is(err, x11.ErrNoScreen) {
			return nil, ErrNoScreen
		}
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Setup claims the window manager role: lock modifiers are resolved for
// button grabs, EWMH identification is published and top-level structure
// changes are selected on the root.
func (b *LinuxBackend) Setup(name string) error {
	b.conn.ConfigureIgnoreMods()
	if err := b.conn.Announce(name); err != nil {
		return err
	}
	if err := b.conn.SelectRootInput(); err != nil {
		return fmt.Errorf("failed to select root window events: %w", err)
	}
	return nil
}

// WindowClass returns the WM_CLASS class of a window.
func (b *LinuxBackend) WindowClass(w WindowID) string {
	return b.conn.WindowClass(xproto.Window(w))
}

// Screen returns the root window and the default screen size.
func (b *LinuxBackend) Screen() Screen {
	return Screen{
		Root:   WindowID(b.conn.Root),
		Width:  b.conn.Width,
		Height: b.conn.Height,
	}
}

// SetBorderColor sets the border pixel of a window.
func (b *LinuxBackend) SetBorderColor(w WindowID, color uint32) {
	b.conn.SetBorderColor(xproto.Window(w), color)
}

// SetBorderWidth sets the border width of a window.
func (b *LinuxBackend) SetBorderWidth(w WindowID, width int) {
	b.conn.SetBorderWidth(xproto.Window(w), width)
}

// SelectInput replaces the event mask of a window.
func (b *LinuxBackend) SelectInput(w WindowID, mask EventMask) {
	b.conn.SelectInput(xproto.Window(w), xEventMask(mask))
}

// SetInputFocus gives keyboard focus to a window.
func (b *LinuxBackend) SetInputFocus(w WindowID) {
	b.conn.Focus(xproto.Window(w))
}

// Configure applies the fields of c named in its mask.
func (b *LinuxBackend) Configure(w WindowID, c Changes) {
	flags, stack := xConfigFlags(c.Mask)
	b.conn.Configure(xproto.Window(w), flags, c.X, c.Y, c.Width, c.Height, stack)
}

// MapWindow maps a window.
func (b *LinuxBackend) MapWindow(w WindowID) {
	b.conn.Map(xproto.Window(w))
}

// KillClient destroys the client owning a window.
func (b *LinuxBackend) KillClient(w WindowID) {
	b.conn.Kill(xproto.Window(w))
}

// Geometry queries the current geometry of a window.
func (b *LinuxBackend) Geometry(w WindowID) (Rect, error) {
	geom, err := b.conn.Geometry(xproto.Window(w))
	if err != nil {
		return Rect{}, fmt.Errorf("geometry of window %d: %w", w, err)
	}
	return Rect{X: geom.X(), Y: geom.Y(), Width: geom.Width(), Height: geom.Height()}, nil
}

// Pointer queries the pointer position in root coordinates.
func (b *LinuxBackend) Pointer(w WindowID) (Point, error) {
	x, y, err := b.conn.QueryPointer(xproto.Window(w))
	if err != nil {
		return Point{}, fmt.Errorf("pointer relative to window %d: %w", w, err)
	}
	return Point{X: x, Y: y}, nil
}

// TopLevels lists the root's children with their override-redirect flag.
// Windows destroyed while being inspected are skipped.
func (b *LinuxBackend) TopLevels() ([]TopLevel, error) {
	children, err := b.conn.Children(b.conn.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to list top-level windows: %w", err)
	}
	out := make([]TopLevel, 0, len(children))
	for _, child := range children {
		override, err := b.conn.OverrideRedirect(child)
		if err != nil {
			continue
		}
		out = append(out, TopLevel{Window: WindowID(child), OverrideRedirect: override})
	}
	return out, nil
}

// GrabButton registers a passive grab of button with mods on a window.
func (b *LinuxBackend) GrabButton(w WindowID, button int, mods uint16) error {
	return b.conn.GrabButton(xproto.Window(w), button, mods)
}

// GrabPointer actively grabs the pointer on a window.
func (b *LinuxBackend) GrabPointer(w WindowID) error {
	return b.conn.GrabPointer(xproto.Window(w))
}

// UngrabPointer releases an active pointer grab.
func (b *LinuxBackend) UngrabPointer() {
	b.conn.UngrabPointer()
}

// WarpPointer moves the pointer relative to a window origin.
func (b *LinuxBackend) WarpPointer(w WindowID, x, y int) {
	b.conn.WarpPointer(xproto.Window(w), x, y)
}

// NextEvent blocks for the next event and translates it.
func (b *LinuxBackend) NextEvent() (Event, error) {
	ev, err := b.conn.WaitForEvent()
	if err != nil {
		if errors.Is(err, x11.ErrConnectionClosed) {
			return nil, ErrConnectionClosed
		}
		return nil, err
	}
	return translateEvent(ev), nil
}

// Flush sends pending requests and waits for the server to process them.
func (b *LinuxBackend) Flush() {
	b.conn.Sync()
}

func xEventMask(mask EventMask) uint32 {
	var out uint32
	if mask&EventMaskEnterWindow != 0 {
		out |= xproto.EventMaskEnterWindow
	}
	if mask&EventMaskSubstructureNotify != 0 {
		out |= xproto.EventMaskSubstructureNotify
	}
	return out
}

func xConfigFlags(mask ChangeMask) (int, byte) {
	var flags int
	var stack byte
	if mask&ChangeX != 0 {
		flags |= xproto.ConfigWindowX
	}
	if mask&ChangeY != 0 {
		flags |= xproto.ConfigWindowY
	}
	if mask&ChangeWidth != 0 {
		flags |= xproto.ConfigWindowWidth
	}
	if mask&ChangeHeight != 0 {
		flags |= xproto.ConfigWindowHeight
	}
	if mask&ChangeRaise != 0 {
		flags |= xproto.ConfigWindowStackMode
		stack = xproto.StackModeAbove
	}
	return flags, stack
}

// translateEvent maps a raw protocol event onto the platform event types.
func translateEvent(ev xgb.Event) Event {
	switch e := ev.(type) {
	case xproto.CreateNotifyEvent:
		return CreateEvent{Parent: WindowID(e.Parent), Window: WindowID(e.Window), OverrideRedirect: e.OverrideRedirect}
	case xproto.DestroyNotifyEvent:
		return DestroyEvent{Parent: WindowID(e.Event), Window: WindowID(e.Window)}
	case xproto.EnterNotifyEvent:
		return EnterEvent{Window: WindowID(e.Event)}
	case xproto.MapNotifyEvent:
		return MapEvent{Parent: WindowID(e.Event), Window: WindowID(e.Window), OverrideRedirect: e.OverrideRedirect}
	case xproto.ButtonPressEvent:
		return ButtonPressEvent{Window: WindowID(e.Child), Button: int(e.Detail)}
	case xproto.MotionNotifyEvent:
		return MotionEvent{RootX: int(e.RootX), RootY: int(e.RootY)}
	case xproto.ButtonReleaseEvent:
		return ButtonReleaseEvent{Button: int(e.Detail)}
	case xproto.ConfigureNotifyEvent:
		return ConfigureEvent{Parent: WindowID(e.Event), Window: WindowID(e.Window), OverrideRedirect: e.OverrideRedirect}
	default:
		return OtherEvent{Kind: fmt.Sprintf("%T", ev)}
	}
}
