package wm

import (
	"errors"
	"testing"

	"github.com/1broseidon/swm/internal/platform"
)

func TestAdopt_SubscribesExistingWindows(t *testing.T) {
	m, fb := newTestManager(t, nil)
	fb.tops = []platform.TopLevel{
		{Window: 10},
		{Window: 11, OverrideRedirect: true},
		{Window: 12},
	}

	if err := m.Adopt(); err != nil {
		t.Fatalf("Adopt: %v", err)
	}
	assertCalls(t, fb.take(),
		"query-tree",
		"select-input 10 "+clientMask,
		"border-width 10 4",
		"border-color 10 "+unfocusColor,
		"select-input 12 "+clientMask,
		"border-width 12 4",
		"border-color 12 "+unfocusColor,
	)
}

func TestAdopt_NoWindows(t *testing.T) {
	m, fb := newTestManager(t, nil)

	if err := m.Adopt(); err != nil {
		t.Fatalf("Adopt: %v", err)
	}
	assertCalls(t, fb.take(), "query-tree")
}

func TestAdopt_QueryFailure(t *testing.T) {
	m, fb := newTestManager(t, nil)
	boom := errors.New("bad window")
	fb.topsErr = boom

	if err := m.Adopt(); !errors.Is(err, boom) {
		t.Fatalf("Adopt() = %v, want %v", err, boom)
	}
}

func TestAdopt_PreexistingWindowIsSubscribedBeforeFocus(t *testing.T) {
	m, fb := newTestManager(t, nil)
	fb.tops = []platform.TopLevel{{Window: 77}}
	st := NewState()

	if err := m.Adopt(); err != nil {
		t.Fatalf("Adopt: %v", err)
	}
	m.Dispatch(st, platform.MapEvent{Parent: testRoot, Window: 77})

	calls := fb.take()
	subscribed, focused := -1, -1
	for i, c := range calls {
		switch c {
		case "select-input 77 "+clientMask:
			subscribed = i
		case "focus 77":
			focused = i
		}
	}
	if subscribed < 0 || focused < 0 || subscribed > focused {
		t.Fatalf("window 77 must be subscribed before it is focused, got %q", calls)
	}
	if st.Focused != 77 {
		t.Fatalf("focused = %d, want 77", st.Focused)
	}
}
