package tocicon

import "image/color"

// Color is a non-premultiplied color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Palette of the glyph design.
var (
	// BackgroundColor is the icon plate, #3EA8FF.
	BackgroundColor = Color{R: 62, G: 168, B: 255, A: 255}

	// White fills the outline lines and bullets.
	White = Color{R: 255, G: 255, B: 255, A: 255}

	// Transparent is the initial canvas color.
	Transparent = Color{}
)

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Opaque reports whether the alpha channel is fully set.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	a := uint8(0xff)
	ok := true

	switch len(hex) {
	case 3: // RGB
		r, g, b = parseNibble(hex[0], &ok)*17, parseNibble(hex[1], &ok)*17, parseNibble(hex[2], &ok)*17
	case 4: // RGBA
		r, g, b = parseNibble(hex[0], &ok)*17, parseNibble(hex[1], &ok)*17, parseNibble(hex[2], &ok)*17
		a = parseNibble(hex[3], &ok) * 17
	case 6: // RRGGBB
		r, g, b = parseByte(hex[0:2], &ok), parseByte(hex[2:4], &ok), parseByte(hex[4:6], &ok)
	case 8: // RRGGBBAA
		r, g, b = parseByte(hex[0:2], &ok), parseByte(hex[2:4], &ok), parseByte(hex[4:6], &ok)
		a = parseByte(hex[6:8], &ok)
	default:
		ok = false
	}

	if !ok {
		return Color{A: 0xff}
	}
	return Color{R: r, G: g, B: b, A: a}
}

func parseByte(s string, ok *bool) uint8 {
	return parseNibble(s[0], ok)<<4 | parseNibble(s[1], ok)
}

func parseNibble(c byte, ok *bool) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	*ok = false
	return 0
}
