package category

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color names a display color: one of the terminal palette names or a
// #rrggbb hex value.
type Color string

const (
	ColorDefault Color = "default"
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
)

// AllColors returns the named palette in display order.
func AllColors() []Color {
	return []Color{
		ColorDefault,
		ColorBlack,
		ColorRed,
		ColorGreen,
		ColorYellow,
		ColorBlue,
		ColorMagenta,
		ColorCyan,
		ColorWhite,
	}
}

// Approximate xterm renderings of the palette, used to match hex colors.
var paletteHex = map[Color]string{
	ColorBlack:   "#000000",
	ColorRed:     "#cd0000",
	ColorGreen:   "#00cd00",
	ColorYellow:  "#cdcd00",
	ColorBlue:    "#0000ee",
	ColorMagenta: "#cd00cd",
	ColorCyan:    "#00cdcd",
	ColorWhite:   "#e5e5e5",
}

// ParseColor converts a string to a Color. Empty input selects DefaultColor.
func ParseColor(raw string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return DefaultColor, nil
	}
	if strings.HasPrefix(string(c), "#") {
		if _, err := colorful.Hex(string(c)); err != nil || len(c) != 7 {
			return "", fmt.Errorf("%w: color %q is not #rrggbb", ErrInvalid, raw)
		}
		return c, nil
	}
	for _, candidate := range AllColors() {
		if candidate == c {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: unknown color %q", ErrInvalid, raw)
}

// IsHex reports whether c is a #rrggbb value.
func (c Color) IsHex() bool {
	return strings.HasPrefix(string(c), "#")
}

// Nearest maps c onto the named palette. Named colors map to themselves,
// hex colors to the palette entry closest in Lab space.
func (c Color) Nearest() Color {
	if !c.IsHex() {
		return c
	}
	target, err := colorful.Hex(string(c))
	if err != nil {
		return ColorDefault
	}
	best := ColorDefault
	bestDist := -1.0
	for _, name := range AllColors() {
		h, ok := paletteHex[name]
		if !ok {
			continue
		}
		p, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		if d := target.DistanceLab(p); bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func (c Color) String() string {
	return string(c)
}
