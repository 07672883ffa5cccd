package wm

import "github.com/1broseidon/swm/internal/platform"

// setFocus recolors win for mode and returns the new focused window.
//
// Active also hands keyboard focus to win. When win is not the window
// currently focused, the old one is recolored inactive first. Inactive
// only recolors win and leaves focused untouched.
func (m *Manager) setFocus(focused, win platform.WindowID, mode FocusMode) platform.WindowID {
	if mode == Inactive {
		m.backend.SetBorderColor(win, uint32(m.cfg.UnfocusColor))
		return focused
	}

	if focused != win && m.isClient(focused) {
		m.backend.SetBorderColor(focused, uint32(m.cfg.UnfocusColor))
	}
	m.backend.SetBorderColor(win, uint32(m.cfg.FocusColor))
	m.backend.SetInputFocus(win)
	return win
}

// isClient reports whether w can be a managed top-level window.
func (m *Manager) isClient(w platform.WindowID) bool {
	return w != platform.None && w != m.screen.Root
}
