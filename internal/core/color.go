package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned when a color name is not in the palette.
var ErrUnknownColor = errors.New("unknown color")

// Color is a palette entry shared by all renderers.
// Terminal renderers map it to ANSI 256-color codes, window renderers to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlack
	ColorGray
	ColorPitch
	ColorDarkBlue
	ColorMaroon
	ColorGold
	ColorOrange
	ColorRed
	ColorYellow
)

var colorNames = map[Color]string{
	ColorDefault:  "default",
	ColorWhite:    "white",
	ColorBlack:    "black",
	ColorGray:     "gray",
	ColorPitch:    "pitch",
	ColorDarkBlue: "darkblue",
	ColorMaroon:   "maroon",
	ColorGold:     "gold",
	ColorOrange:   "orange",
	ColorRed:      "red",
	ColorYellow:   "yellow",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor looks up a palette color by name (case-insensitive).
func ParseColor(name string) (Color, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == want {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: %w %q", ErrUnknownColor, name)
}

// MarshalText implements encoding.TextMarshaler so colors round-trip through YAML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
