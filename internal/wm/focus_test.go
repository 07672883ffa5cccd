package wm

import (
	"testing"

	"github.com/1broseidon/swm/internal/platform"
)

func TestSetFocus_ActiveRecolorsPreviousFirst(t *testing.T) {
	m, fb := newTestManager(t, nil)

	got := m.setFocus(10, 20, Active)
	if got != 20 {
		t.Fatalf("setFocus returned %d, want 20", got)
	}
	assertCalls(t, fb.take(),
		"border-color 10 "+unfocusColor,
		"border-color 20 "+focusColor,
		"focus 20",
	)
}

func TestSetFocus_ActiveWithNothingFocused(t *testing.T) {
	m, fb := newTestManager(t, nil)

	got := m.setFocus(platform.None, 20, Active)
	if got != 20 {
		t.Fatalf("setFocus returned %d, want 20", got)
	}
	assertCalls(t, fb.take(),
		"border-color 20 "+focusColor,
		"focus 20",
	)
}

func TestSetFocus_RootIsNeverRecolored(t *testing.T) {
	m, fb := newTestManager(t, nil)

	m.setFocus(testRoot, 20, Active)
	assertCalls(t, fb.take(),
		"border-color 20 "+focusColor,
		"focus 20",
	)
}

func TestSetFocus_InactiveKeepsFocusedWindow(t *testing.T) {
	m, fb := newTestManager(t, nil)

	got := m.setFocus(10, 20, Inactive)
	if got != 10 {
		t.Fatalf("setFocus returned %d, want 10", got)
	}
	assertCalls(t, fb.take(), "border-color 20 "+unfocusColor)
}

func TestSetFocus_IdempotentForSameWindow(t *testing.T) {
	m, fb := newTestManager(t, nil)

	first := m.setFocus(10, 20, Active)
	fb.take()
	second := m.setFocus(first, 20, Active)
	if first != second {
		t.Fatalf("focused changed from %d to %d", first, second)
	}
	// No recolor of a "previous" window: the final color stays focused.
	assertCalls(t, fb.take(),
		"border-color 20 "+focusColor,
		"focus 20",
	)
}

func TestSetFocus_UsesConfiguredColors(t *testing.T) {
	m, fb := newTestManager(t, nil)
	m.cfg.FocusColor = 0xFF0000
	m.cfg.UnfocusColor = 0x0000FF

	m.setFocus(10, 20, Active)
	assertCalls(t, fb.take(),
		"border-color 10 #0000FF",
		"border-color 20 #FF0000",
		"focus 20",
	)
}
