package state

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrBadColor is returned when a color string cannot be parsed.
var ErrBadColor = errors.New("invalid color")

// Swatch is one preset color button.
type Swatch struct {
	ID    string
	Color color.NRGBA
}

// DefaultSwatches mirrors the preset buttons shown next to the color picker.
var DefaultSwatches = []Swatch{
	{ID: "white", Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	{ID: "black", Color: color.NRGBA{A: 0xff}},
	{ID: "red", Color: color.NRGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff}},
	{ID: "green", Color: color.NRGBA{R: 0x6d, G: 0xd4, B: 0x00, A: 0xff}},
	{ID: "blue", Color: color.NRGBA{R: 0x4a, G: 0x98, B: 0xf7, A: 0xff}},
}

// Palette maps swatch identifiers to colors.
type Palette struct {
	swatches []Swatch
}

func NewPalette(swatches []Swatch) *Palette {
	if len(swatches) == 0 {
		swatches = DefaultSwatches
	}
	s := make([]Swatch, len(swatches))
	copy(s, swatches)
	return &Palette{swatches: s}
}

// Swatches returns the swatches in display order.
func (p *Palette) Swatches() []Swatch {
	out := make([]Swatch, len(p.swatches))
	copy(out, p.swatches)
	return out
}

// Lookup returns the color for a swatch id.
func (p *Palette) Lookup(id string) (color.NRGBA, bool) {
	for _, s := range p.swatches {
		if s.ID == id {
			return s.Color, true
		}
	}
	return color.NRGBA{}, false
}

// ParseColor accepts "#rgb", "#rrggbb", "rgb(r, g, b)" and SVG color names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}
	return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
}

func parseHex(s string) (color.NRGBA, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func parseRGBFunc(s string) (color.NRGBA, error) {
	parts := strings.Split(s[len("rgb("):len(s)-1], ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
		}
		rgb[i] = uint8(n)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}

// FormatHex renders c as "#rrggbb".
func FormatHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
