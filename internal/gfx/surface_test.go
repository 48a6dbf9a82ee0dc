package gfx

import "testing"

func TestNewSurfaceRejectsBadSize(t *testing.T) {
	if _, err := NewSurface(0, 100); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := NewSurface(100, -1); err == nil {
		t.Error("Expected error for negative height")
	}
}

func TestSetPixelClipsSilently(t *testing.T) {
	s, err := NewSurface(10, 10)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}

	// None of these may panic or touch valid pixels.
	s.SetPixel(-1, 0, White)
	s.SetPixel(0, -1, White)
	s.SetPixel(10, 0, White)
	s.SetPixel(0, 10, White)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.At(x, y) != Black {
				t.Fatalf("Pixel (%d,%d) modified by out-of-range write", x, y)
			}
		}
	}
}

func TestFillRectClipsAtBounds(t *testing.T) {
	s, err := NewSurface(8, 8)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}

	s.FillRect(6, 6, 10, 10, Red)

	if s.At(7, 7) != Red {
		t.Error("Expected in-bounds corner of clipped rect to be filled")
	}
	if s.At(5, 5) != Black {
		t.Error("Fill leaked outside the requested rect")
	}

	// Fully off-surface fills are dropped.
	s.FillRect(100, 100, 4, 4, Green)
	s.FillRect(-20, -20, 4, 4, Green)
}

func TestFillRoundedRectErasesCorners(t *testing.T) {
	s, err := NewSurface(40, 40)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}

	s.FillRoundedRect(5, 5, 20, 20, Blue)

	if s.At(15, 15) != Blue {
		t.Error("Expected interior to be filled")
	}
	if s.At(5, 5) == Blue {
		t.Error("Expected top-left corner pixel to be erased")
	}
	if s.At(24, 24) == Blue {
		t.Error("Expected bottom-right corner pixel to be erased")
	}

	// Tiny rects are filled without corner treatment.
	s.FillRoundedRect(30, 30, 3, 3, Red)
	if s.At(30, 30) != Red {
		t.Error("Expected tiny rounded rect to fill its corners")
	}
}

func TestDrawOutline(t *testing.T) {
	s, err := NewSurface(20, 20)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}

	s.DrawOutline(2, 2, 10, 10, Yellow)

	if s.At(2, 2) != Yellow || s.At(11, 11) != Yellow {
		t.Error("Expected outline corners to be drawn")
	}
	if s.At(5, 5) != Black {
		t.Error("Outline must not fill the interior")
	}
}

func TestDrawTextRendersGlyphs(t *testing.T) {
	s, err := NewSurface(100, 20)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}

	s.DrawText("HI", 0, 0, White)

	lit := 0
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < 2*GlyphWidth; x++ {
			if s.At(x, y) != Black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Expected DrawText to light at least one pixel")
	}

	if w := s.TextWidth("HI"); w != 2*GlyphWidth {
		t.Errorf("Expected text width %d, got %d", 2*GlyphWidth, w)
	}

	// Off-surface text is clipped, not an error.
	s.DrawText("CLIPPED", 95, 18, White)
	s.DrawText("GONE", -500, -500, White)
}

func TestDrawTextUsesCache(t *testing.T) {
	s, err := NewSurface(100, 20)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}

	s.DrawText("MENU", 0, 0, White)
	if _, ok := s.text.masks.Get("MENU"); !ok {
		t.Error("Expected rendered string to be cached")
	}
}

func TestBlendRect(t *testing.T) {
	s, err := NewSurface(10, 10)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}
	s.Clear(White)

	s.BlendRect(0, 0, 10, 10, Black, 0.5)

	got := s.At(5, 5)
	if got == White || got == Black {
		t.Errorf("Expected 50%% blend toward black, got %+v", got)
	}

	s.BlendRect(0, 0, 10, 10, Black, 1.0)
	if s.At(5, 5) != Black {
		t.Error("Expected full-opacity blend to equal a fill")
	}
}

func TestColorHelpers(t *testing.T) {
	if got := (Color{100, 100, 100}).Scale(0.5); got != (Color{50, 50, 50}) {
		t.Errorf("Scale(0.5) = %+v", got)
	}
	if got := White.Blend(Black, 0); got != White {
		t.Errorf("Blend(0) must be identity, got %+v", got)
	}
	if got := White.Blend(Black, 1); got != Black {
		t.Errorf("Blend(1) must be the target, got %+v", got)
	}
}
