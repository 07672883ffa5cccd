package x11

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

var (
	// ErrNoScreen is returned when the server setup lists no screens.
	ErrNoScreen = errors.New("x11: no screen found")
	// ErrConnectionClosed is returned by WaitForEvent once the connection is gone.
	ErrConnectionClosed = errors.New("x11: connection closed")
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil  *xgbutil.XUtil
	Root   xproto.Window
	Width  int
	Height int

	logger *slog.Logger
}

// NewConnection connects to display (or $DISPLAY when empty) and initializes
// the keyboard mapping needed to resolve lock modifiers.
func NewConnection(display string, logger *slog.Logger) (*Connection, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}
	setup := xproto.Setup(c)
	if setup == nil || len(setup.Roots) == 0 {
		c.Close()
		return nil, ErrNoScreen
	}

	xu, err := xgbutil.NewConnXgb(c)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize xgbutil: %w", err)
	}

	// Required before lock modifiers can be looked up.
	keybind.Initialize(xu)

	screen := xu.Screen()
	return &Connection{
		XUtil:  xu,
		Root:   xu.RootWin(),
		Width:  int(screen.WidthInPixels),
		Height: int(screen.HeightInPixels),
		logger: logger,
	}, nil
}

// SelectRootInput subscribes to structural changes of top-level windows.
// It fails if the server rejects the request.
func (c *Connection) SelectRootInput() error {
	return xproto.ChangeWindowAttributesChecked(c.XUtil.Conn(), c.Root,
		xproto.CwEventMask, []uint32{xproto.EventMaskSubstructureNotify}).Check()
}

// WaitForEvent blocks for the next event. Protocol errors for earlier
// fire-and-forget requests are logged and skipped.
func (c *Connection) WaitForEvent() (xgb.Event, error) {
	for {
		ev, xerr := c.XUtil.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return nil, ErrConnectionClosed
		}
		if xerr != nil {
			c.logger.Debug("x11 request failed", "error", xerr)
			continue
		}
		return ev, nil
	}
}

// Sync flushes outstanding requests and waits for the server to process them.
func (c *Connection) Sync() {
	c.XUtil.Sync()
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
