package wm

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/1broseidon/swm/internal/config"
	"github.com/1broseidon/swm/internal/platform"
)

const testRoot platform.WindowID = 1

// fakeBackend records every request as a short string and replays scripted
// events, geometries and pointer positions.
type fakeBackend struct {
	screen  platform.Screen
	calls   []string
	events  []platform.Event
	geoms   map[platform.WindowID]platform.Rect
	geomErr map[platform.WindowID]error
	pointer platform.Point
	ptrErr  error
	grabErr error
	tops    []platform.TopLevel
	topsErr error
	flushes int
	grabbed bool
	buttons []string
}

var _ platform.Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		screen:  platform.Screen{Root: testRoot, Width: 1920, Height: 1080},
		geoms:   make(map[platform.WindowID]platform.Rect),
		geomErr: make(map[platform.WindowID]error),
	}
}

func (f *fakeBackend) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) Screen() platform.Screen { return f.screen }

func (f *fakeBackend) SetBorderColor(w platform.WindowID, color uint32) {
	f.record("border-color %d #%06X", w, color)
}

func (f *fakeBackend) SetBorderWidth(w platform.WindowID, width int) {
	f.record("border-width %d %d", w, width)
}

func (f *fakeBackend) SelectInput(w platform.WindowID, mask platform.EventMask) {
	f.record("select-input %d %d", w, mask)
}

func (f *fakeBackend) SetInputFocus(w platform.WindowID) {
	f.record("focus %d", w)
}

func (f *fakeBackend) Configure(w platform.WindowID, c platform.Changes) {
	var parts []string
	if c.Mask&platform.ChangeX != 0 {
		parts = append(parts, fmt.Sprintf("x=%d", c.X))
	}
	if c.Mask&platform.ChangeY != 0 {
		parts = append(parts, fmt.Sprintf("y=%d", c.Y))
	}
	if c.Mask&platform.ChangeWidth != 0 {
		parts = append(parts, fmt.Sprintf("w=%d", c.Width))
	}
	if c.Mask&platform.ChangeHeight != 0 {
		parts = append(parts, fmt.Sprintf("h=%d", c.Height))
	}
	if c.Mask&platform.ChangeRaise != 0 {
		parts = append(parts, "raise")
	}
	f.record("configure %d %s", w, strings.Join(parts, " "))
}

func (f *fakeBackend) MapWindow(w platform.WindowID) {
	f.record("map %d", w)
}

func (f *fakeBackend) KillClient(w platform.WindowID) {
	f.record("kill %d", w)
}

func (f *fakeBackend) Geometry(w platform.WindowID) (platform.Rect, error) {
	f.record("query-geometry %d", w)
	if err := f.geomErr[w]; err != nil {
		return platform.Rect{}, err
	}
	g, ok := f.geoms[w]
	if !ok {
		return platform.Rect{}, fmt.Errorf("window %d: bad drawable", w)
	}
	return g, nil
}

func (f *fakeBackend) Pointer(w platform.WindowID) (platform.Point, error) {
	f.record("query-pointer %d", w)
	if f.ptrErr != nil {
		return platform.Point{}, f.ptrErr
	}
	return f.pointer, nil
}

func (f *fakeBackend) TopLevels() ([]platform.TopLevel, error) {
	f.record("query-tree")
	if f.topsErr != nil {
		return nil, f.topsErr
	}
	return f.tops, nil
}

func (f *fakeBackend) GrabButton(w platform.WindowID, button int, mods uint16) error {
	f.buttons = append(f.buttons, fmt.Sprintf("%d %d %#x", w, button, mods))
	return nil
}

func (f *fakeBackend) GrabPointer(w platform.WindowID) error {
	f.record("grab-pointer %d", w)
	if f.grabErr != nil {
		return f.grabErr
	}
	f.grabbed = true
	return nil
}

func (f *fakeBackend) UngrabPointer() {
	f.record("ungrab-pointer")
	f.grabbed = false
}

func (f *fakeBackend) WarpPointer(w platform.WindowID, x, y int) {
	f.record("warp %d %d,%d", w, x, y)
}

func (f *fakeBackend) NextEvent() (platform.Event, error) {
	if len(f.events) == 0 {
		return nil, platform.ErrConnectionClosed
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeBackend) Flush() {
	f.flushes++
}

// take returns the calls recorded so far and clears the log.
func (f *fakeBackend) take() []string {
	out := f.calls
	f.calls = nil
	return out
}

func (f *fakeBackend) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func newTestManager(t *testing.T, mutate func(*config.Config)) (*Manager, *fakeBackend) {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	fb := newFakeBackend()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(fb, cfg, logger), fb
}

func assertCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls mismatch\n got: %q\nwant: %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d = %q, want %q\n got: %q", i, got[i], want[i], got)
		}
	}
}

const (
	focusColor   = "#18191A"
	unfocusColor = "#111213"
)
