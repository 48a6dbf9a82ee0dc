package compositor

import (
	"testing"

	"github.com/sigma/mirage/internal/anim"
	"github.com/sigma/mirage/internal/gfx"
)

func testStack() *Stack {
	return NewStack(640, 480, 24, 60)
}

func addN(st *Stack, n int) {
	for i := 0; i < n; i++ {
		st.Add("Window", ContentBlank, Rect{X: 10 * i, Y: 10 * i, W: 200, H: 150}, gfx.White)
	}
}

func TestFirstWindowGetsFocus(t *testing.T) {
	st := testStack()
	addN(st, 3)

	if st.FocusedIndex() != 0 {
		t.Fatalf("Expected first window focused, got %d", st.FocusedIndex())
	}
	if !st.Window(0).Focused {
		t.Error("Focused flag not set on first window")
	}
	for i := 1; i < 3; i++ {
		if st.Window(i).Focused {
			t.Errorf("Window %d should not be focused", i)
		}
	}
}

func TestFocusInvalidIndexIsNoop(t *testing.T) {
	st := testStack()
	addN(st, 2)
	st.Focus(1)

	st.Focus(-1)
	st.Focus(5)

	if st.FocusedIndex() != 1 {
		t.Errorf("Invalid focus changed state, focus=%d", st.FocusedIndex())
	}
}

func TestCloseFocusedReassignsToPrevious(t *testing.T) {
	st := testStack()
	addN(st, 4)
	st.Focus(2)

	st.Close(2)

	if st.Len() != 3 {
		t.Fatalf("Expected 3 windows after close, got %d", st.Len())
	}
	if st.FocusedIndex() != 1 {
		t.Errorf("Expected focus on previous index 1, got %d", st.FocusedIndex())
	}
	if !st.Window(1).Focused {
		t.Error("Focused flag not synchronized after close")
	}
}

func TestCloseFocusedAtBottomFocusesFirst(t *testing.T) {
	st := testStack()
	addN(st, 3)
	st.Focus(0)

	st.Close(0)

	if st.FocusedIndex() != 0 {
		t.Errorf("Expected focus on index 0, got %d", st.FocusedIndex())
	}
}

func TestCloseSkipsMinimizedWhenReassigning(t *testing.T) {
	st := testStack()
	addN(st, 3)
	st.Minimize(0)
	st.Focus(1)

	st.Close(1)

	// Index 0 is minimized; focus must land on the first restored window.
	got := st.FocusedIndex()
	if got < 0 || st.Window(got).Minimized {
		t.Errorf("Focus landed on minimized or missing window: %d", got)
	}
}

func TestCloseLastWindowClearsFocus(t *testing.T) {
	st := testStack()
	addN(st, 1)

	st.Close(0)

	if st.Len() != 0 || st.FocusedIndex() != -1 {
		t.Errorf("Expected empty stack with no focus, got len=%d focus=%d", st.Len(), st.FocusedIndex())
	}
}

func TestCloseAboveFocusShiftsIndex(t *testing.T) {
	st := testStack()
	addN(st, 3)
	st.Focus(2)

	st.Close(0)

	if st.FocusedIndex() != 1 {
		t.Errorf("Focus index not shifted after close below it, got %d", st.FocusedIndex())
	}
	if !st.Window(1).Focused {
		t.Error("Focused flag lost after index shift")
	}
}

func TestCloseInvalidIndexIsNoop(t *testing.T) {
	st := testStack()
	addN(st, 2)

	st.Close(-1)
	st.Close(9)

	if st.Len() != 2 {
		t.Errorf("Invalid close removed a window, len=%d", st.Len())
	}
}

func TestMinimizeFocusedHandsFocusForward(t *testing.T) {
	st := testStack()
	addN(st, 3)

	st.Minimize(0)

	if st.FocusedIndex() != 1 {
		t.Errorf("Expected focus on first restored window 1, got %d", st.FocusedIndex())
	}
	if !st.Window(0).Minimized {
		t.Error("Window not marked minimized")
	}
}

func TestMinimizeAllClearsFocus(t *testing.T) {
	st := testStack()
	addN(st, 2)

	st.Minimize(0)
	st.Minimize(1)

	if st.FocusedIndex() != -1 {
		t.Errorf("Expected no focus with all windows minimized, got %d", st.FocusedIndex())
	}

	// Restoring one while nothing is focused focuses it.
	st.Minimize(1)
	if st.FocusedIndex() != 1 {
		t.Errorf("Expected restored window to take focus, got %d", st.FocusedIndex())
	}
}

func TestMaximizeTogglesAndRestoresGeometry(t *testing.T) {
	st := testStack()
	original := Rect{X: 80, Y: 80, W: 500, H: 350}
	st.Add("Files", ContentFiles, original, gfx.White)

	st.Maximize(0)
	w := st.Window(0)
	if !w.Maximized {
		t.Fatal("Window not maximized")
	}
	want := Rect{X: 0, Y: 24, W: 640, H: 480 - 24 - 60}
	if w.Rect != want {
		t.Errorf("Maximized rect = %+v, want %+v", w.Rect, want)
	}

	st.Maximize(0)
	if w.Maximized {
		t.Error("Second maximize should restore")
	}
	if w.Rect != original {
		t.Errorf("Restored rect = %+v, want %+v", w.Rect, original)
	}
}

func TestHitTestFindsTopmost(t *testing.T) {
	st := testStack()
	st.Add("Bottom", ContentBlank, Rect{X: 0, Y: 0, W: 100, H: 100}, gfx.White)
	st.Add("Top", ContentBlank, Rect{X: 50, Y: 50, W: 100, H: 100}, gfx.White)

	if got := st.HitTest(75, 75); got != 1 {
		t.Errorf("Expected topmost window 1 at overlap, got %d", got)
	}
	if got := st.HitTest(10, 10); got != 0 {
		t.Errorf("Expected window 0 outside the overlap, got %d", got)
	}
	if got := st.HitTest(300, 300); got != -1 {
		t.Errorf("Expected miss, got %d", got)
	}
}

func TestHitTestSkipsMinimized(t *testing.T) {
	st := testStack()
	st.Add("A", ContentBlank, Rect{X: 0, Y: 0, W: 100, H: 100}, gfx.White)
	st.Add("B", ContentBlank, Rect{X: 0, Y: 0, W: 100, H: 100}, gfx.White)

	st.Minimize(1)

	if got := st.HitTest(50, 50); got != 0 {
		t.Errorf("Expected minimized window skipped, got %d", got)
	}
}

func TestDrawAllEmitsFocusedLast(t *testing.T) {
	st := testStack()
	// Three overlapping windows with distinct backgrounds; the focused one
	// must end up on top of the shared pixel.
	st.Add("A", ContentBlank, Rect{X: 0, Y: 0, W: 200, H: 200}, gfx.Red)
	st.Add("B", ContentBlank, Rect{X: 0, Y: 0, W: 200, H: 200}, gfx.Green)
	st.Add("C", ContentBlank, Rect{X: 0, Y: 0, W: 200, H: 200}, gfx.Blue)
	st.Focus(1)

	s, err := gfx.NewSurface(640, 480)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}
	st.DrawAll(s)

	// Probe a pixel inside the content area of every window. The focused
	// window draws last, so its (slightly gradient-shaded) green dominates.
	got := s.At(100, 100)
	if got.G < got.R || got.G < got.B {
		t.Errorf("Expected focused green window on top, got %+v", got)
	}
}

func TestDrawAllIsPureRead(t *testing.T) {
	st := testStack()
	addN(st, 2)
	st.Window(1).Motion = anim.SpringOpen(0, 0, 100, 100)
	before := st.Window(1).Motion.Width.Elapsed

	s, err := gfx.NewSurface(640, 480)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}
	st.DrawAll(s)

	if st.Window(1).Motion.Width.Elapsed != before {
		t.Error("DrawAll advanced an animation")
	}
	if st.FocusedIndex() != 0 {
		t.Error("DrawAll changed focus")
	}
}

func TestUpdateReleasesFinishedMotion(t *testing.T) {
	st := testStack()
	st.Add("A", ContentBlank, Rect{X: 0, Y: 0, W: 100, H: 100}, gfx.White)
	st.Window(0).Motion = anim.SpringOpen(0, 0, 100, 100)

	for i := 0; i < 30; i++ {
		st.Update()
	}

	if st.Window(0).Motion != nil {
		t.Error("Completed transition not released")
	}
}

func TestParseContentKindRoundTrip(t *testing.T) {
	kinds := []ContentKind{ContentBlank, ContentFiles, ContentTerminal, ContentSettings, ContentBrowser}
	for _, k := range kinds {
		if got := ParseContentKind(k.String()); got != k {
			t.Errorf("ParseContentKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if got := ParseContentKind("nonsense"); got != ContentBlank {
		t.Errorf("Unknown kind should fall back to blank, got %v", got)
	}
}
