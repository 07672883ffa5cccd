package x11

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xrect"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// SetBorderColor changes the border pixel of a window.
func (c *Connection) SetBorderColor(windowID xproto.Window, pixel uint32) {
	xwindow.New(c.XUtil, windowID).Change(xproto.CwBorderPixel, pixel)
}

// SetBorderWidth changes the border width of a window. xwindow.Configure
// drops border widths, so the request is issued directly.
func (c *Connection) SetBorderWidth(windowID xproto.Window, width int) {
	xproto.ConfigureWindow(c.XUtil.Conn(), windowID,
		xproto.ConfigWindowBorderWidth, []uint32{uint32(width)})
}

// SelectInput replaces the event mask of a window.
func (c *Connection) SelectInput(windowID xproto.Window, mask uint32) {
	xwindow.New(c.XUtil, windowID).Change(xproto.CwEventMask, mask)
}

// Focus gives keyboard focus to a window, reverting to the pointer root, and
// publishes it as _NET_ACTIVE_WINDOW.
func (c *Connection) Focus(windowID xproto.Window) {
	xproto.SetInputFocus(c.XUtil.Conn(), xproto.InputFocusPointerRoot,
		windowID, xproto.TimeCurrentTime)
	if err := ewmh.ActiveWindowSet(c.XUtil, windowID); err != nil {
		c.logger.Debug("failed to set _NET_ACTIVE_WINDOW", "window", windowID, "error", err)
	}
}

// Configure issues a ConfigureWindow request with the xproto.ConfigWindow*
// fields named in flags.
func (c *Connection) Configure(windowID xproto.Window, flags, x, y, width, height int, stackMode byte) {
	xwindow.New(c.XUtil, windowID).Configure(flags, x, y, width, height, 0, stackMode)
}

// Map maps a window.
func (c *Connection) Map(windowID xproto.Window) {
	xwindow.New(c.XUtil, windowID).Map()
}

// Kill asks the server to destroy the client owning a window and release
// its resources.
func (c *Connection) Kill(windowID xproto.Window) {
	xwindow.New(c.XUtil, windowID).Kill()
}

// Geometry queries the current geometry of a window. This is a round-trip.
func (c *Connection) Geometry(windowID xproto.Window) (xrect.Rect, error) {
	return xwindow.RawGeometry(c.XUtil, xproto.Drawable(windowID))
}

// WindowClass returns the WM_CLASS class of a window, or "" when unset.
func (c *Connection) WindowClass(windowID xproto.Window) string {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}

// Children returns the children of a window in stacking order, bottom first.
func (c *Connection) Children(windowID xproto.Window) ([]xproto.Window, error) {
	tree, err := xproto.QueryTree(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return nil, err
	}
	return tree.Children, nil
}

// OverrideRedirect reports whether a window asked not to be managed.
func (c *Connection) OverrideRedirect(windowID xproto.Window) (bool, error) {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return false, err
	}
	return attrs.OverrideRedirect, nil
}
