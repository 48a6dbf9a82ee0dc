package notification

import (
	"github.com/sigma/mirage/internal/anim"
	"github.com/sigma/mirage/internal/gfx"
)

// Notification is one transient banner. Its x position slides in under an
// animation; y is fixed at creation from the stack offset and never restacked.
type Notification struct {
	Title   string
	Message string

	X      float64
	Y      int
	Width  int
	Height int

	Slide    *anim.Animation
	Age      uint32
	Lifetime uint32
}

// Update advances the slide-in animation and ages the banner by one tick.
func (n *Notification) Update() {
	n.X = n.Slide.Advance()
	n.Age++
}

// Expired reports whether the banner has outlived its lifetime.
func (n *Notification) Expired() bool {
	return n.Age > n.Lifetime
}

// Draw renders the banner at its current animated position.
func (n *Notification) Draw(s *gfx.Surface) {
	x := int(n.X)

	s.FillRoundedRect(x, n.Y, n.Width, n.Height, gfx.Color{R: 248, G: 248, B: 248})
	s.DrawOutline(x, n.Y, n.Width, n.Height, gfx.Color{R: 200, G: 200, B: 200})

	s.DrawText(n.Title, x+15, n.Y+13, gfx.Black)
	s.DrawText(n.Message, x+15, n.Y+33, gfx.DarkGray)

	// App badge.
	s.FillRoundedRect(x+n.Width-50, n.Y+15, 30, 30, gfx.Blue)
}
