package view

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colors the frame builder attaches to draw ops.
type Theme struct {
	Foreground colorful.Color
	Background colorful.Color
	Cursor     colorful.Color
	Label      colorful.Color
}

// DefaultTheme returns the stock dark theme: white text on black with
// a muted blue cursor cell.
func DefaultTheme() Theme {
	return Theme{
		Foreground: mustHex("#ffffff"),
		Background: mustHex("#000000"),
		Cursor:     mustHex("#5f87af"),
		Label:      mustHex("#afafaf"),
	}
}

// ParseTheme builds a theme from hex color strings. Empty strings keep
// the default for that slot; an invalid color is an error naming the
// offending slot.
func ParseTheme(foreground, background, cursorColor, label string) (Theme, error) {
	th := DefaultTheme()

	slots := []struct {
		name  string
		value string
		dst   *colorful.Color
	}{
		{"foreground", foreground, &th.Foreground},
		{"background", background, &th.Background},
		{"cursor", cursorColor, &th.Cursor},
		{"label", label, &th.Label},
	}

	for _, s := range slots {
		if s.value == "" {
			continue
		}
		c, err := colorful.Hex(s.value)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("theme %s color %q: %w", s.name, s.value, err)
		}
		*s.dst = c
	}

	return th, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
