package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Build-time defaults. A config file may override them once at startup.
const (
	DefaultModifier     = "super"
	DefaultBorderWidth  = 4
	DefaultFocusColor   = Color(0x18191A)
	DefaultUnfocusColor = Color(0x111213)
	DefaultEnableMouse  = true
	DefaultEnableSloppy = true
	DefaultMoveButton   = 1
	DefaultResizeButton = 3
	DefaultLogLevel     = "info"

	// MaxBorderWidth keeps borders inside the 16-bit protocol field with room
	// to spare for the clamp arithmetic.
	MaxBorderWidth = 256
)

// Color is a 24-bit RGB pixel value.
type Color uint32

// String renders the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c))
}

// MarshalYAML writes colors in the same form the loader accepts.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// ParseColor accepts "#RRGGBB", "0xRRGGBB" or a bare hex triplet.
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(v, "#"):
		v = v[1:]
	case strings.HasPrefix(v, "0x"), strings.HasPrefix(v, "0X"):
		v = v[2:]
	}
	if len(v) == 0 || len(v) > 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(n), nil
}

// Modifier mask bits, numerically identical to the X core protocol masks.
const (
	ModShift   uint16 = 1 << 0
	ModLock    uint16 = 1 << 1
	ModControl uint16 = 1 << 2
	Mod1       uint16 = 1 << 3
	Mod2       uint16 = 1 << 4
	Mod3       uint16 = 1 << 5
	Mod4       uint16 = 1 << 6
	Mod5       uint16 = 1 << 7
)

var modifierNames = map[string]uint16{
	"super":   Mod4,
	"alt":     Mod1,
	"ctrl":    ModControl,
	"control": ModControl,
	"shift":   ModShift,
	"mod1":    Mod1,
	"mod2":    Mod2,
	"mod3":    Mod3,
	"mod4":    Mod4,
	"mod5":    Mod5,
}

// ParseModifier turns "super", "alt-shift", "Mod4" etc. into a modifier mask.
func ParseModifier(s string) (uint16, error) {
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("modifier is empty")
	}
	var mask uint16
	for _, part := range strings.Split(s, "-") {
		m, ok := modifierNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
		mask |= m
	}
	return mask, nil
}

// Config is the effective window manager configuration.
type Config struct {
	// Display overrides $DISPLAY when non-empty.
	Display      string `yaml:"display"`
	Modifier     string `yaml:"modifier"`
	BorderWidth  int    `yaml:"border_width"`
	FocusColor   Color  `yaml:"focus_color"`
	UnfocusColor Color  `yaml:"unfocus_color"`
	EnableMouse  bool   `yaml:"enable_mouse"`
	EnableSloppy bool   `yaml:"enable_sloppy"`
	MoveButton   int    `yaml:"move_button"`
	ResizeButton int    `yaml:"resize_button"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultConfig returns the build-time configuration.
func DefaultConfig() *Config {
	return &Config{
		Modifier:     DefaultModifier,
		BorderWidth:  DefaultBorderWidth,
		FocusColor:   DefaultFocusColor,
		UnfocusColor: DefaultUnfocusColor,
		EnableMouse:  DefaultEnableMouse,
		EnableSloppy: DefaultEnableSloppy,
		MoveButton:   DefaultMoveButton,
		ResizeButton: DefaultResizeButton,
		LogLevel:     DefaultLogLevel,
	}
}

// ModMask returns the parsed modifier. Call Validate first.
func (c *Config) ModMask() uint16 {
	mask, _ := ParseModifier(c.Modifier)
	return mask
}

func (c *Config) Validate() error {
	if _, err := ParseModifier(c.Modifier); err != nil {
		return &ValidationError{Path: "modifier", Err: err}
	}
	if c.BorderWidth < 0 || c.BorderWidth > MaxBorderWidth {
		return &ValidationError{Path: "border_width", Err: fmt.Errorf("border_width must be between 0 and %d", MaxBorderWidth)}
	}
	if c.FocusColor > 0xFFFFFF {
		return &ValidationError{Path: "focus_color", Err: fmt.Errorf("focus_color must be a 24-bit color")}
	}
	if c.UnfocusColor > 0xFFFFFF {
		return &ValidationError{Path: "unfocus_color", Err: fmt.Errorf("unfocus_color must be a 24-bit color")}
	}
	if c.MoveButton < 1 || c.MoveButton > 5 {
		return &ValidationError{Path: "move_button", Err: fmt.Errorf("move_button must be between 1 and 5")}
	}
	if c.ResizeButton < 1 || c.ResizeButton > 5 {
		return &ValidationError{Path: "resize_button", Err: fmt.Errorf("resize_button must be between 1 and 5")}
	}
	if c.MoveButton == c.ResizeButton {
		return &ValidationError{Path: "resize_button", Err: fmt.Errorf("resize_button must differ from move_button")}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	return nil
}
