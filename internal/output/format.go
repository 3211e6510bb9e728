// Package output provides formatting and display utilities for the rocket CLI.
package output

import (
	"fmt"
	"os"
	"strings"
)

// ANSI color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	BoldRed = "\033[1;31m"
)

var (
	useColor = true
	// forceColor skips the terminal check; set by tests.
	forceColor = false
)

// DisableColor disables colored output.
func DisableColor() {
	useColor = false
}

// EnableColor enables colored output.
func EnableColor() {
	useColor = true
}

// IsColorEnabled returns whether color output is enabled.
func IsColorEnabled() bool {
	return useColor && (forceColor || isTerminal())
}

func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Color applies a color to text if color is enabled.
func Color(text, color string) string {
	if !IsColorEnabled() {
		return text
	}
	return color + text + Reset
}

// StatusColor returns the color for a rocket status.
func StatusColor(status string) string {
	switch strings.ToUpper(status) {
	case "ON_GROUND":
		return Yellow
	case "IN_SPACE":
		return Green
	case "DAMAGED":
		return BoldRed
	default:
		return White
	}
}

// StatusIcon returns a colored icon for a rocket status.
func StatusIcon(status string) string {
	switch strings.ToUpper(status) {
	case "ON_GROUND":
		return Color("▲", Yellow)
	case "IN_SPACE":
		return Color("✓", Green)
	case "DAMAGED":
		return Color("✗", BoldRed)
	default:
		return "?"
	}
}

// FuelGauge renders fuel as a bar. Levels below the launch threshold are
// red, above 80% of capacity yellow (close to overflow), otherwise green.
func FuelGauge(level, capacity, threshold float64, width int) string {
	if capacity <= 0 || width <= 0 {
		return "[]"
	}
	filled := int(level / capacity * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var color string
	switch {
	case level < threshold:
		color = Red
	case level > capacity*0.8:
		color = Yellow
	default:
		color = Green
	}

	return Color("["+bar+"]", color)
}

// FormatFuel formats a fuel amount against capacity, e.g. "150.0/1000".
func FormatFuel(level, capacity float64) string {
	return fmt.Sprintf("%.1f/%.0f", level, capacity)
}

// Header creates a formatted header line.
func Header(text string, width int) string {
	padding := (width - len(text) - 2) / 2
	if padding < 0 {
		padding = 0
	}
	line := strings.Repeat("=", padding) + " " + text + " " + strings.Repeat("=", padding)
	for len(line) < width {
		line += "="
	}
	return Color(line, Bold)
}

// Checkmark returns a colored checkmark or X.
func Checkmark(ok bool) string {
	if ok {
		return Color("✓", Green)
	}
	return Color("✗", Red)
}

// Truncate truncates text to a maximum width with ellipsis.
func Truncate(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}
	if maxWidth <= 3 {
		return text[:maxWidth]
	}
	return text[:maxWidth-3] + "..."
}

// PadRight pads text to a minimum width.
func PadRight(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}
