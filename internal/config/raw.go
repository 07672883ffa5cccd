package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RawColor supports either a quoted "#RRGGBB"/"0xRRGGBB" string or a plain
// YAML integer.
type RawColor Color

func (c *RawColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a scalar")
	}
	switch value.Tag {
	case "!!int":
		var n uint32
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("invalid color %q", value.Value)
		}
		*c = RawColor(n)
		return nil
	case "!!str":
		parsed, err := ParseColor(value.Value)
		if err != nil {
			return err
		}
		*c = RawColor(parsed)
		return nil
	default:
		return fmt.Errorf("color must be a string or integer")
	}
}

// RawConfig mirrors the file format. Nil fields keep their default.
type RawConfig struct {
	Display      *string   `yaml:"display"`
	Modifier     *string   `yaml:"modifier"`
	BorderWidth  *int      `yaml:"border_width"`
	FocusColor   *RawColor `yaml:"focus_color"`
	UnfocusColor *RawColor `yaml:"unfocus_color"`
	EnableMouse  *bool     `yaml:"enable_mouse"`
	EnableSloppy *bool     `yaml:"enable_sloppy"`
	MoveButton   *int      `yaml:"move_button"`
	ResizeButton *int      `yaml:"resize_button"`
	LogLevel     *string   `yaml:"log_level"`
}
