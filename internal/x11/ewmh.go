package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"
)

// Announce identifies this client as the running EWMH window manager. The
// xgbutil dummy window (override-redirect, created before any root event
// selection) doubles as the _NET_SUPPORTING_WM_CHECK window.
func (c *Connection) Announce(name string) error {
	check := c.XUtil.Dummy()

	if err := ewmh.SupportingWmCheckSet(c.XUtil, c.Root, check); err != nil {
		return fmt.Errorf("failed to set _NET_SUPPORTING_WM_CHECK on root: %w", err)
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, check, check); err != nil {
		return fmt.Errorf("failed to set _NET_SUPPORTING_WM_CHECK on check window: %w", err)
	}
	if err := ewmh.WmNameSet(c.XUtil, check, name); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	if err := ewmh.SupportedSet(c.XUtil, []string{
		"_NET_SUPPORTED",
		"_NET_SUPPORTING_WM_CHECK",
		"_NET_WM_NAME",
		"_NET_ACTIVE_WINDOW",
	}); err != nil {
		return fmt.Errorf("failed to set _NET_SUPPORTED: %w", err)
	}
	return nil
}
