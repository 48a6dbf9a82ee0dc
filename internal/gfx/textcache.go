package gfx

import (
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph metrics of the fixed-width face used for all shell text.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)

const textCacheSize = 512

// textCache holds rasterized alpha masks for strings so repeated chrome text
// (menu labels, dock icons, window titles) is shaped once per distinct string.
type textCache struct {
	face  font.Face
	masks *lru.Cache[string, *image.Alpha]
}

func newTextCache(size int) (*textCache, error) {
	masks, err := lru.New[string, *image.Alpha](size)
	if err != nil {
		return nil, err
	}
	return &textCache{face: basicfont.Face7x13, masks: masks}, nil
}

// mask returns the alpha mask for text, rendering and caching it on a miss.
func (tc *textCache) mask(text string) *image.Alpha {
	if m, ok := tc.masks.Get(text); ok {
		return m
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	m := image.NewAlpha(image.Rect(0, 0, len(runes)*GlyphWidth, GlyphHeight))
	d := font.Drawer{
		Dst:  m,
		Src:  image.Opaque,
		Face: tc.face,
		Dot:  fixed.P(0, tc.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	tc.masks.Add(text, m)
	return m
}
