package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig overlays raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.Modifier != nil {
		cfg.Modifier = *raw.Modifier
	}
	if raw.BorderWidth != nil {
		cfg.BorderWidth = *raw.BorderWidth
	}
	if raw.FocusColor != nil {
		cfg.FocusColor = Color(*raw.FocusColor)
	}
	if raw.UnfocusColor != nil {
		cfg.UnfocusColor = Color(*raw.UnfocusColor)
	}
	if raw.EnableMouse != nil {
		cfg.EnableMouse = *raw.EnableMouse
	}
	if raw.EnableSloppy != nil {
		cfg.EnableSloppy = *raw.EnableSloppy
	}
	if raw.MoveButton != nil {
		cfg.MoveButton = *raw.MoveButton
	}
	if raw.ResizeButton != nil {
		cfg.ResizeButton = *raw.ResizeButton
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}

	return cfg
}
