package wm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/1broseidon/swm/internal/config"
	"github.com/1broseidon/swm/internal/platform"
)

// Manager routes display events to the focus, subscription and interaction
// handlers. It holds only immutable collaborators; all mutable state lives
// in the State passed to Dispatch.
type Manager struct {
	backend platform.Backend
	cfg     *config.Config
	screen  platform.Screen
	logger  *slog.Logger
}

// New creates a manager for the backend's screen.
func New(backend platform.Backend, cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		backend: backend,
		cfg:     cfg,
		screen:  backend.Screen(),
		logger:  logger,
	}
}

// GrabButtons registers the move and resize buttons, combined with the
// configured modifier, on the root window. It does nothing when mouse
// interaction is disabled.
func (m *Manager) GrabButtons() error {
	if !m.cfg.EnableMouse {
		return nil
	}
	mods := m.cfg.ModMask()
	for _, button := range []int{m.cfg.MoveButton, m.cfg.ResizeButton} {
		if err := m.backend.GrabButton(m.screen.Root, button, mods); err != nil {
			return fmt.Errorf("failed to grab button %d: %w", button, err)
		}
	}
	m.logger.Info("button grabs registered", "modifier", m.cfg.Modifier,
		"move_button", m.cfg.MoveButton, "resize_button", m.cfg.ResizeButton)
	return nil
}

// Run processes events until the connection breaks. It never returns nil.
func (m *Manager) Run() error {
	st := NewState()
	m.logger.Info("window manager running", "root", m.screen.Root,
		"width", m.screen.Width, "height", m.screen.Height)

	for {
		ev, err := m.backend.NextEvent()
		if err != nil {
			return fmt.Errorf("event loop stopped: %w", err)
		}
		m.Dispatch(st, ev)
		m.backend.Flush()
	}
}

// Dispatch handles a single event.
func (m *Manager) Dispatch(st *State, ev platform.Event) {
	switch e := ev.(type) {
	case platform.CreateEvent:
		if e.OverrideRedirect || !m.topLevel(e.Parent) {
			return
		}
		m.logger.Debug("window created", "window", e.Window)
		m.subscribe(e.Window)
		st.Focused = m.setFocus(st.Focused, e.Window, Active)

	case platform.DestroyEvent:
		if !m.topLevel(e.Parent) {
			return
		}
		m.logger.Debug("window destroyed", "window", e.Window)
		m.backend.KillClient(e.Window)
		if st.Dragging() && st.Drag.Window == e.Window {
			m.abortDrag(st, fmt.Errorf("window %d destroyed", e.Window))
		}
		if st.Focused == e.Window {
			st.Focused = platform.None
		}

	case platform.EnterEvent:
		if !m.cfg.EnableSloppy || !m.isClient(e.Window) {
			return
		}
		st.Focused = m.setFocus(st.Focused, e.Window, Active)

	case platform.MapEvent:
		if e.OverrideRedirect || !m.topLevel(e.Parent) {
			return
		}
		m.logMapped(e.Window)
		m.backend.MapWindow(e.Window)
		st.Focused = m.setFocus(st.Focused, e.Window, Active)

	case platform.ButtonPressEvent:
		if m.cfg.EnableMouse {
			m.pressButton(st, e)
		}

	case platform.MotionEvent:
		if m.cfg.EnableMouse {
			m.motion(st)
		}

	case platform.ButtonReleaseEvent:
		if m.cfg.EnableMouse {
			m.releaseButton(st)
		}

	case platform.ConfigureEvent:
		if e.OverrideRedirect || !m.topLevel(e.Parent) || !m.isClient(e.Window) {
			return
		}
		if m.isClient(st.Focused) {
			st.Focused = m.setFocus(st.Focused, st.Focused, Inactive)
		}
		st.Focused = m.setFocus(st.Focused, e.Window, Active)

	default:
		m.logger.Debug("ignored event", "event", fmt.Sprintf("%T", ev))
	}
}

// topLevel reports whether a structure event was delivered for a child of
// the root rather than for a client's own subwindow.
func (m *Manager) topLevel(parent platform.WindowID) bool {
	return parent == m.screen.Root
}

// windowClasser is implemented by backends that can name a window.
type windowClasser interface {
	WindowClass(w platform.WindowID) string
}

func (m *Manager) logMapped(w platform.WindowID) {
	if !m.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	class := ""
	if wc, ok := m.backend.(windowClasser); ok {
		class = wc.WindowClass(w)
	}
	m.logger.Debug("window mapped", "window", w, "class", class)
}
