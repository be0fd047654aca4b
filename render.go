package tocicon

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when an icon size is not a positive integer.
var ErrInvalidSize = errors.New("tocicon: invalid icon size")

// Render draws the glyph at the given size and returns the finished
// canvas. The result depends only on size and opts: rendering the same
// size twice yields identical pixels.
func Render(size int, opts ...RenderOption) (*Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := Layout(size)
	Logger().Debug("tocicon: render",
		"size", size,
		"thickness", l.Thickness,
		"margin", l.LeftMargin,
		"radius", l.CornerRadius,
		"antialias", o.antialias)

	c := NewCanvas(size)
	c.SetAntialias(o.antialias)
	drawGlyph(c, l)
	return c, nil
}

// drawGlyph paints the plate, then each bar with its bullet, in order.
func drawGlyph(c *Canvas, l GlyphLayout) {
	c.FillRoundedRect(l.Background(), l.CornerRadius, BackgroundColor)

	for i := range l.Lines {
		c.FillRoundedRect(l.LineRect(i), l.LineRadius(), White)
		if r, ok := l.BulletRect(i); ok {
			c.FillEllipse(r, White)
		}
	}
}
