package compositor

import (
	"github.com/sigma/mirage/internal/anim"
	"github.com/sigma/mirage/internal/gfx"
)

// ContentKind selects the sample content a window renders. It is chosen at
// creation time and never derived from the title string.
type ContentKind int

const (
	ContentBlank ContentKind = iota
	ContentFiles
	ContentTerminal
	ContentSettings
	ContentBrowser
)

func (k ContentKind) String() string {
	switch k {
	case ContentFiles:
		return "files"
	case ContentTerminal:
		return "terminal"
	case ContentSettings:
		return "settings"
	case ContentBrowser:
		return "browser"
	default:
		return "blank"
	}
}

// ParseContentKind maps a config string to a ContentKind. Unknown strings
// fall back to blank content.
func ParseContentKind(s string) ContentKind {
	switch s {
	case "files":
		return ContentFiles
	case "terminal":
		return ContentTerminal
	case "settings":
		return ContentSettings
	case "browser":
		return ContentBrowser
	default:
		return ContentBlank
	}
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const titleBarHeight = 36

// Window owns the geometry and state of one shell window.
type Window struct {
	ID         int
	Title      string
	Content    ContentKind
	Rect       Rect
	Background gfx.Color

	Focused   bool
	Minimized bool
	Maximized bool

	// Motion, when set, is an in-flight open/minimize transition. The window
	// draws at the animated rectangle until the group completes.
	Motion *anim.Group

	restore Rect
}

// NewWindow creates an unfocused, restored window.
func NewWindow(id int, title string, kind ContentKind, r Rect, bg gfx.Color) *Window {
	return &Window{ID: id, Title: title, Content: kind, Rect: r, Background: bg}
}

// Draw renders the window chrome and content. Minimized windows without a
// running transition are skipped entirely.
func (w *Window) Draw(s *gfx.Surface) {
	if w.Minimized && w.Motion == nil {
		return
	}

	r := w.Rect
	alpha := 1.0
	if w.Motion != nil {
		r = Rect{
			X: int(w.Motion.X.Value()),
			Y: int(w.Motion.Y.Value()),
			W: int(w.Motion.Width.Value()),
			H: int(w.Motion.Height.Value()),
		}
		alpha = w.Motion.Alpha.Value()
	}
	if r.W <= 0 || r.H <= 0 {
		return
	}

	// Drop shadow.
	for i := 0; i < 4; i++ {
		s.BlendRect(r.X+i+2, r.Y+i+2, r.W, r.H, gfx.Black, 0.08)
	}

	s.FillVGradient(r.X, r.Y, r.W, r.H, w.Background, 0.05)
	w.drawTitleBar(s, r)

	if r.H > titleBarHeight {
		content := Rect{X: r.X, Y: r.Y + titleBarHeight, W: r.W, H: r.H - titleBarHeight}
		drawContent(s, w.Content, content)
	}

	if alpha < 1 {
		s.BlendRect(r.X, r.Y, r.W, r.H, gfx.LightGray, 1-alpha)
	}

	if w.Focused && w.Motion == nil {
		// Resize grip.
		s.FillRect(r.X+r.W-15, r.Y+r.H-15, 15, 15, gfx.Gray)
	}
}

func (w *Window) drawTitleBar(s *gfx.Surface, r Rect) {
	barColor := gfx.Color{R: 250, G: 250, B: 250}
	titleColor := gfx.Gray
	if w.Focused {
		barColor = gfx.Color{R: 240, G: 240, B: 240}
		titleColor = gfx.Black
	}

	s.FillRoundedRect(r.X, r.Y, r.W, titleBarHeight, barColor)
	s.FillRect(r.X, r.Y+titleBarHeight-1, r.W, 1, gfx.Color{R: 200, G: 200, B: 200})

	// Traffic lights: close, minimize, maximize.
	buttons := []gfx.Color{{R: 255, G: 96, B: 96}, {R: 255, G: 189, B: 68}, {R: 40, G: 200, B: 64}}
	for i, c := range buttons {
		bx := r.X + 12 + i*24
		by := r.Y + 10
		s.FillRoundedRect(bx+1, by+1, 16, 16, gfx.DarkGray)
		s.FillRoundedRect(bx, by, 16, 16, c)
	}

	s.DrawText(w.Title, r.X+80, r.Y+12, titleColor)
}
