package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/mousebind"
)

// QueryPointer returns the pointer position in root coordinates.
func (c *Connection) QueryPointer(windowID xproto.Window) (int, int, error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}

// WarpPointer moves the pointer to (x, y) relative to the window origin.
func (c *Connection) WarpPointer(windowID xproto.Window, x, y int) {
	xproto.WarpPointer(c.XUtil.Conn(), 0, windowID, 0, 0, 0, 0, int16(x), int16(y))
}

// GrabPointer actively grabs the pointer on the given window so that motion
// and release events go only to us until UngrabPointer.
func (c *Connection) GrabPointer(windowID xproto.Window) error {
	ok, err := mousebind.GrabPointer(c.XUtil, windowID, 0, 0)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("pointer grab on window %d was refused", windowID)
	}
	return nil
}

// UngrabPointer releases an active pointer grab.
func (c *Connection) UngrabPointer() {
	mousebind.UngrabPointer(c.XUtil)
}

// GrabButton registers a passive grab of button+mods on a window, once for
// every combination of the ignored lock modifiers.
func (c *Connection) GrabButton(windowID xproto.Window, button int, mods uint16) error {
	return mousebind.GrabChecked(c.XUtil, windowID, mods, xproto.Button(button), false)
}
