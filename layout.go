package tocicon

import (
	"image"
	"math"
)

// LineCount is the number of outline entries in the glyph.
const LineCount = 5

// glyphRows holds the proportional divisors of each outline entry, top to
// bottom. They mimic heading levels H1, H2, H2, H3, H1. An indent divisor
// of 0 means no indent; major rows get a full-thickness bullet.
var glyphRows = [LineCount]struct {
	y, width, indent float64
	major            bool
}{
	{y: 4, width: 2.2, indent: 0, major: true},
	{y: 2.5, width: 3, indent: 10},
	{y: 2, width: 3, indent: 10},
	{y: 1.6, width: 4, indent: 5},
	{y: 1.25, width: 2.2, indent: 0, major: true},
}

// minorBulletScale shrinks the bullets of the indented rows. The scaled
// diameter truncates, so at thickness 1 those bullets vanish.
const minorBulletScale = 0.8

// Line is one outline entry: a rounded bar and its bullet.
type Line struct {
	Y      int // vertical center
	Width  int
	Indent int
	Bullet int // bullet diameter, 0 when invisible
}

// GlyphLayout is the geometry of the glyph for one icon size. All values
// are pure functions of Size.
type GlyphLayout struct {
	Size         int
	Thickness    int
	LeftMargin   int
	RightMargin  int
	CornerRadius int
	Lines        [LineCount]Line
}

// Layout computes the glyph geometry for the given icon size.
func Layout(size int) GlyphLayout {
	l := GlyphLayout{
		Size:         size,
		Thickness:    size / 16,
		LeftMargin:   size / 6,
		RightMargin:  size / 6,
		CornerRadius: size / 6,
	}
	for i, row := range glyphRows {
		line := Line{
			Y:     fraction(size, row.y),
			Width: fraction(size, row.width),
		}
		if row.indent > 0 {
			line.Indent = fraction(size, row.indent)
		}
		if row.major {
			line.Bullet = l.Thickness
		} else {
			line.Bullet = int(float64(l.Thickness) * minorBulletScale)
		}
		l.Lines[i] = line
	}
	return l
}

// fraction returns floor(size / divisor).
func fraction(size int, divisor float64) int {
	return int(math.Floor(float64(size) / divisor))
}

// Background returns the box of the icon plate, the whole canvas.
func (l GlyphLayout) Background() image.Rectangle {
	return image.Rect(0, 0, l.Size, l.Size)
}

// LineRadius is the corner radius of every outline bar.
func (l GlyphLayout) LineRadius() int {
	return l.Thickness / 2
}

// LineRect returns the pixel box of the i-th bar. The bar spans
// Width+1 pixels from LeftMargin+Indent and Thickness/2 pixels above
// and below Y.
func (l GlyphLayout) LineRect(i int) image.Rectangle {
	line := l.Lines[i]
	x0 := l.LeftMargin + line.Indent
	x1 := x0 + line.Width
	half := l.Thickness / 2
	return image.Rect(x0, line.Y-half, x1+1, line.Y+half+1)
}

// BulletRect returns the pixel box of the i-th bullet, right-aligned
// against the right margin and centered on the bar. ok is false when the
// bullet diameter is 0.
func (l GlyphLayout) BulletRect(i int) (r image.Rectangle, ok bool) {
	line := l.Lines[i]
	if line.Bullet <= 0 {
		return image.Rectangle{}, false
	}
	half := line.Bullet / 2
	cx := l.Size - l.RightMargin - half
	return image.Rect(cx-half, line.Y-half, cx+half+1, line.Y+half+1), true
}
