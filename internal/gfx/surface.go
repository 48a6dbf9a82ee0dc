package gfx

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Surface is a directly addressed RGBA pixel buffer. All drawing operations
// clip silently at the surface bounds; out-of-range writes are dropped.
type Surface struct {
	img  *image.RGBA
	w, h int
	text *textCache
}

// NewSurface allocates a surface of the given size.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	tc, err := newTextCache(textCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create text cache: %w", err)
	}
	return &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		w:    width,
		h:    height,
		text: tc,
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.h }

// At returns the color of a single pixel, or Black outside the bounds.
func (s *Surface) At(x, y int) Color {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return Black
	}
	c := s.img.RGBAAt(x, y)
	return Color{c.R, c.G, c.B}
}

// SetPixel writes a single pixel.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.img.SetRGBA(x, y, c.RGBA())
}

// Clear fills the whole surface.
func (s *Surface) Clear(c Color) {
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{c.RGBA()}, image.Point{}, draw.Src)
}

func (s *Surface) clipped(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
}

// FillRect fills a rectangle, clipped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c Color) {
	r := s.clipped(x, y, w, h)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, &image.Uniform{c.RGBA()}, image.Point{}, draw.Src)
}

// BlendRect blends a rectangle over the existing pixels with the given
// opacity. Used for dimmed backdrops and entry fades.
func (s *Surface) BlendRect(x, y, w, h int, c Color, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity >= 1 {
		s.FillRect(x, y, w, h, c)
		return
	}
	r := s.clipped(x, y, w, h)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			old := s.img.RGBAAt(px, py)
			s.img.SetRGBA(px, py, Color{old.R, old.G, old.B}.Blend(c, opacity).RGBA())
		}
	}
}

// FillVGradient fills a rectangle with a vertical gradient that darkens the
// base color toward the bottom by up to falloff (0 = flat fill).
func (s *Surface) FillVGradient(x, y, w, h int, base Color, falloff float64) {
	if h <= 0 {
		return
	}
	for dy := 0; dy < h; dy++ {
		f := 1.0 - float64(dy)/float64(h)*falloff
		s.FillRect(x, y+dy, w, 1, base.Scale(f))
	}
}

// FillRoundedRect fills a rectangle but leaves the three pixels of each
// corner untouched, approximating rounded corners by erasure.
func (s *Surface) FillRoundedRect(x, y, w, h int, c Color) {
	s.FillRect(x, y, w, h, c)
	if w <= 4 || h <= 4 {
		return
	}
	corners := [][2]int{
		{x, y}, {x + 1, y}, {x, y + 1},
		{x + w - 1, y}, {x + w - 2, y}, {x + w - 1, y + 1},
		{x, y + h - 1}, {x + 1, y + h - 1}, {x, y + h - 2},
		{x + w - 1, y + h - 1}, {x + w - 2, y + h - 1}, {x + w - 1, y + h - 2},
	}
	bg := LightGray
	for _, p := range corners {
		s.SetPixel(p[0], p[1], bg)
	}
}

// DrawOutline draws a one-pixel rectangle outline.
func (s *Surface) DrawOutline(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for dx := 0; dx < w; dx++ {
		s.SetPixel(x+dx, y, c)
		s.SetPixel(x+dx, y+h-1, c)
	}
	for dy := 0; dy < h; dy++ {
		s.SetPixel(x, y+dy, c)
		s.SetPixel(x+w-1, y+dy, c)
	}
}

// DrawText renders fixed-width glyph text with its top-left corner at (x, y).
func (s *Surface) DrawText(text string, x, y int, c Color) {
	if text == "" {
		return
	}
	mask := s.text.mask(text)
	if mask == nil {
		return
	}
	b := mask.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.DrawMask(s.img, dst, &image.Uniform{c.RGBA()}, image.Point{}, mask, b.Min, draw.Over)
}

// TextWidth returns the pixel width of a string as drawn by DrawText.
func (s *Surface) TextWidth(text string) int {
	return len([]rune(text)) * GlyphWidth
}

// EncodePNG writes the surface as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SaveFrame writes the surface to dir as a zero-padded numbered PNG.
func (s *Surface) SaveFrame(dir string, n uint32) error {
	path := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	defer f.Close()
	if err := s.EncodePNG(f); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}
