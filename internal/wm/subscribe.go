package wm

import (
	"fmt"

	"github.com/1broseidon/swm/internal/platform"
)

// clientEventMask is selected on every managed window: pointer entry for
// sloppy focus and the window's own substructure.
const clientEventMask = platform.EventMaskEnterWindow | platform.EventMaskSubstructureNotify

// subscribe prepares a newly created window. It runs once per window.
func (m *Manager) subscribe(win platform.WindowID) {
	m.backend.SelectInput(win, clientEventMask)
	m.backend.SetBorderWidth(win, m.cfg.BorderWidth)
}

// Adopt subscribes the top-level windows that existed before the manager
// started, since they never produce a create notification. Override-redirect
// windows are left alone. Root input must already be selected so that no
// window created afterwards is missed.
func (m *Manager) Adopt() error {
	tops, err := m.backend.TopLevels()
	if err != nil {
		return fmt.Errorf("failed to adopt existing windows: %w", err)
	}
	adopted := 0
	for _, top := range tops {
		if top.OverrideRedirect || !m.isClient(top.Window) {
			continue
		}
		m.subscribe(top.Window)
		m.setFocus(platform.None, top.Window, Inactive)
		adopted++
	}
	m.logger.Info("existing windows adopted", "count", adopted)
	return nil
}
