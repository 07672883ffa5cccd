package config

import (
	"fmt"
	"strings"
)

// Keys lists every configuration key in file order.
var Keys = []string{
	"display",
	"modifier",
	"border_width",
	"focus_color",
	"unfocus_color",
	"enable_mouse",
	"enable_sloppy",
	"move_button",
	"resize_button",
	"log_level",
}

// Explain returns the effective value of key and where it came from.
func Explain(res *LoadResult, key string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, Source{}, fmt.Errorf("key is empty")
	}

	value, err := lookupValue(res.Config, key)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[key]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, key string) (any, error) {
	switch key {
	case "display":
		return cfg.Display, nil
	case "modifier":
		return cfg.Modifier, nil
	case "border_width":
		return cfg.BorderWidth, nil
	case "focus_color":
		return cfg.FocusColor.String(), nil
	case "unfocus_color":
		return cfg.UnfocusColor.String(), nil
	case "enable_mouse":
		return cfg.EnableMouse, nil
	case "enable_sloppy":
		return cfg.EnableSloppy, nil
	case "move_button":
		return cfg.MoveButton, nil
	case "resize_button":
		return cfg.ResizeButton, nil
	case "log_level":
		return cfg.LogLevel, nil
	default:
		return nil, fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
}
