package wm

import (
	"github.com/1broseidon/swm/internal/platform"
)

// pressButton starts a move or resize of the window under the pointer.
func (m *Manager) pressButton(st *State, ev platform.ButtonPressEvent) {
	if st.Dragging() {
		m.logger.Debug("ignoring press during drag", "window", ev.Window, "dragging", st.Drag.Window)
		return
	}
	if !m.isClient(ev.Window) {
		return
	}

	m.backend.Configure(ev.Window, platform.Changes{Mask: platform.ChangeRaise})

	geom, err := m.backend.Geometry(ev.Window)
	if err != nil {
		m.logger.Debug("drag not started", "window", ev.Window, "error", err)
		return
	}

	mode := Resizing
	if ev.Button == m.cfg.MoveButton {
		mode = Moving
	}

	anchor := platform.Point{X: geom.Width, Y: geom.Height}
	if mode == Moving {
		anchor = platform.Point{X: geom.Width / 2, Y: geom.Height / 2}
	}
	m.backend.WarpPointer(ev.Window, anchor.X, anchor.Y)

	if err := m.backend.GrabPointer(m.screen.Root); err != nil {
		m.logger.Debug("drag not started", "window", ev.Window, "error", err)
		return
	}

	st.Drag = Drag{
		Mode:     mode,
		Window:   ev.Window,
		Pointer:  platform.Point{X: geom.X + anchor.X, Y: geom.Y + anchor.Y},
		Geometry: geom,
	}
	m.logger.Debug("drag started", "window", ev.Window, "mode", mode)
}

// motion applies one step of the current drag.
func (m *Manager) motion(st *State) {
	if !st.Dragging() {
		return
	}

	ptr, err := m.backend.Pointer(m.screen.Root)
	if err != nil {
		m.abortDrag(st, err)
		return
	}
	geom, err := m.backend.Geometry(st.Drag.Window)
	if err != nil {
		m.abortDrag(st, err)
		return
	}
	st.Drag.Pointer = ptr
	st.Drag.Geometry = geom

	switch st.Drag.Mode {
	case Moving:
		x, y := moveOrigin(m.screen, m.cfg.BorderWidth, geom, ptr)
		m.backend.Configure(st.Drag.Window, platform.Changes{
			Mask: platform.ChangeX | platform.ChangeY,
			X:    x,
			Y:    y,
		})
	case Resizing:
		w, h := resizeExtent(geom, ptr)
		m.backend.Configure(st.Drag.Window, platform.Changes{
			Mask:   platform.ChangeWidth | platform.ChangeHeight,
			Width:  w,
			Height: h,
		})
	}
}

// releaseButton ends the current drag and gives the window focus.
func (m *Manager) releaseButton(st *State) {
	if !st.Dragging() {
		return
	}
	st.Focused = m.setFocus(st.Focused, st.Drag.Window, Active)
	m.backend.UngrabPointer()
	m.logger.Debug("drag finished", "window", st.Drag.Window, "mode", st.Drag.Mode)
	st.ResetDrag()
}

// abortDrag drops the current drag without touching the window.
func (m *Manager) abortDrag(st *State, reason error) {
	m.logger.Debug("drag aborted", "window", st.Drag.Window, "mode", st.Drag.Mode, "error", reason)
	m.backend.UngrabPointer()
	st.ResetDrag()
}

// moveOrigin returns the top-left corner that centers geom on the pointer,
// kept inside the screen.
func moveOrigin(screen platform.Screen, border int, geom platform.Rect, ptr platform.Point) (int, int) {
	return clampAxis(ptr.X, geom.Width, screen.Width, border),
		clampAxis(ptr.Y, geom.Height, screen.Height, border)
}

// clampAxis centers a window of the given extent on pointer along one axis.
// The far-edge clamp is applied first; a pointer within half an extent of
// the origin then pins the window to zero.
func clampAxis(pointer, extent, screen, border int) int {
	half := extent / 2
	pos := pointer - half
	if pos+extent > screen-2*border {
		pos = screen - extent - 2*border
	}
	if pointer <= half {
		pos = 0
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// resizeExtent puts the bottom-right corner under the pointer. There is no
// upper bound; the lower bound is one pixel.
func resizeExtent(geom platform.Rect, ptr platform.Point) (int, int) {
	return max(ptr.X-geom.X, 1), max(ptr.Y-geom.Y, 1)
}
