package tocicon

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"
)

func TestNewCanvasTransparent(t *testing.T) {
	c := NewCanvas(8)
	if c.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", c.Size())
	}
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("new canvas is not fully transparent")
		}
	}
}

func TestCanvasPixelOutOfBounds(t *testing.T) {
	c := NewCanvas(4)
	c.FillRoundedRect(c.Bounds(), 0, White)
	oob := []struct{ x, y int }{
		{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {100, 100},
	}
	for _, p := range oob {
		if got := c.Pixel(p.x, p.y); got != Transparent {
			t.Errorf("Pixel(%d, %d) = %+v, want transparent", p.x, p.y, got)
		}
	}
}

func TestFillRoundedRect(t *testing.T) {
	c := NewCanvas(12)
	c.FillRoundedRect(image.Rect(0, 0, 12, 12), 2, BackgroundColor)

	tests := []struct {
		name string
		x, y int
		want Color
	}{
		{"center", 6, 6, BackgroundColor},
		{"top left", 0, 0, Transparent},
		{"top right", 11, 0, Transparent},
		{"bottom left", 0, 11, Transparent},
		{"bottom right", 11, 11, Transparent},
		{"edge midline", 0, 6, BackgroundColor},
		{"inside arc", 1, 1, BackgroundColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Pixel(tt.x, tt.y); got != tt.want {
				t.Errorf("Pixel(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFillRoundedRectOverwrites(t *testing.T) {
	c := NewCanvas(10)
	c.FillRoundedRect(c.Bounds(), 0, BackgroundColor)
	c.FillRoundedRect(image.Rect(2, 4, 8, 5), 0, White)

	for x := 0; x < 10; x++ {
		want := BackgroundColor
		if x >= 2 && x < 8 {
			want = White
		}
		if got := c.Pixel(x, 4); got != want {
			t.Errorf("Pixel(%d, 4) = %+v, want %+v", x, got, want)
		}
	}
	if got := c.Pixel(4, 5); got != BackgroundColor {
		t.Errorf("Pixel(4, 5) = %+v, want background", got)
	}
}

func TestFillRoundedRectClipped(t *testing.T) {
	c := NewCanvas(4)
	// Must not panic and must clip to the canvas.
	c.FillRoundedRect(image.Rect(-10, -10, 20, 20), 3, White)
	c.FillRoundedRect(image.Rect(10, 10, 20, 20), 3, BackgroundColor)
	c.FillRoundedRect(image.Rectangle{}, 3, BackgroundColor)

	if got := c.Pixel(0, 0); got != White {
		t.Errorf("Pixel(0, 0) = %+v, want white", got)
	}
}

func TestFillEllipse(t *testing.T) {
	c := NewCanvas(9)
	c.FillEllipse(image.Rect(0, 0, 9, 9), White)

	if got := c.Pixel(4, 4); got != White {
		t.Errorf("center = %+v, want white", got)
	}
	if got := c.Pixel(8, 4); got != White {
		t.Errorf("rim = %+v, want white", got)
	}
	if got := c.Pixel(0, 0); got != Transparent {
		t.Errorf("corner = %+v, want transparent", got)
	}
	if got := c.Pixel(7, 7); got != Transparent {
		t.Errorf("diagonal (7,7) = %+v, want transparent", got)
	}
}

func TestFillEllipseSinglePixel(t *testing.T) {
	c := NewCanvas(5)
	c.FillEllipse(image.Rect(2, 2, 3, 3), White)

	count := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c.Pixel(x, y) == White {
				count++
			}
		}
	}
	if count != 1 || c.Pixel(2, 2) != White {
		t.Errorf("one-pixel ellipse painted %d pixels", count)
	}
}

func TestAntialiasFringe(t *testing.T) {
	hard := NewCanvas(20)
	hard.FillEllipse(image.Rect(2, 2, 18, 18), White)

	soft := NewCanvas(20)
	soft.SetAntialias(true)
	soft.FillEllipse(image.Rect(2, 2, 18, 18), White)

	partial := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if a := soft.Pixel(x, y).A; a != 0 && a != 255 {
				partial++
			}
			if a := hard.Pixel(x, y).A; a != 0 && a != 255 {
				t.Fatalf("hard fill left partial alpha %d at (%d, %d)", a, x, y)
			}
		}
	}
	if partial == 0 {
		t.Error("antialiased fill has no partially covered pixels")
	}
}

func TestCanvasEncodePNG(t *testing.T) {
	c := NewCanvas(16)
	c.FillRoundedRect(c.Bounds(), 2, BackgroundColor)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := FromColor(img.At(8, 8)); got != BackgroundColor {
		t.Errorf("decoded center = %+v, want %+v", got, BackgroundColor)
	}
	if got := FromColor(img.At(0, 0)); got.A != 0 {
		t.Errorf("decoded corner alpha = %d, want 0", got.A)
	}
}

func TestCanvasSavePNGMissingDir(t *testing.T) {
	c := NewCanvas(4)
	err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "icon.png"))
	if err == nil {
		t.Fatal("SavePNG into a missing directory succeeded")
	}
}
