package overlay

import "github.com/sigma/mirage/internal/gfx"

// Modal is the about-style dialog overlay. It layers above the search panel
// and below nothing else but the notification stack and pointer.
type Modal struct {
	visible bool

	Title string
	Lines []string
}

// NewModal creates a hidden modal dialog.
func NewModal(title string, lines []string) *Modal {
	return &Modal{Title: title, Lines: lines}
}

// Visible reports whether the dialog is shown.
func (m *Modal) Visible() bool { return m.visible }

// Show displays the dialog.
func (m *Modal) Show() { m.visible = true }

// Hide dismisses the dialog.
func (m *Modal) Hide() { m.visible = false }

// Draw renders the dimmed backdrop and the dialog.
func (m *Modal) Draw(s *gfx.Surface) {
	if !m.visible {
		return
	}

	const (
		dialogW = 400
		dialogH = 300
	)
	x := (s.Width() - dialogW) / 2
	y := (s.Height() - dialogH) / 2

	s.BlendRect(0, 0, s.Width(), s.Height(), gfx.Black, 0.55)

	s.FillRoundedRect(x, y, dialogW, dialogH, gfx.White)
	s.DrawOutline(x, y, dialogW, dialogH, gfx.Gray)

	// Title bar with close button.
	s.FillRoundedRect(x, y, dialogW, 40, gfx.Color{R: 245, G: 245, B: 245})
	s.FillRoundedRect(x+15, y+12, 16, 16, gfx.Red)
	s.DrawText(m.Title, x+44, y+14, gfx.Black)

	// Badge.
	s.FillRoundedRect(x+50, y+60, 80, 80, gfx.Blue)

	for i, line := range m.Lines {
		s.DrawText(line, x+160, y+70+i*20, gfx.Black)
	}

	// Action button.
	s.FillRoundedRect(x+dialogW-120, y+dialogH-50, 100, 30, gfx.Blue)
	s.DrawText("More Info", x+dialogW-108, y+dialogH-42, gfx.White)
}
