package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for verbose parse diagnostics
type ColorScheme struct {
	Input   *color.Color
	OS      *color.Color
	Browser *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Input:   color.New(color.FgWhite, color.Bold),
		OS:      color.New(color.FgCyan),
		Browser: color.New(color.FgYellow),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Input.DisableColor()
	scheme.OS.DisableColor()
	scheme.Browser.DisableColor()

	return scheme
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
