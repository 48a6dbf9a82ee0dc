package overlay

import (
	"fmt"

	"github.com/sigma/mirage/internal/gfx"
)

// Workspace describes one virtual desktop shown by the switcher.
type Workspace struct {
	ID        int
	Wallpaper gfx.Color
	WindowIDs []int
}

// Switcher is the workspace-switcher overlay. While visible it replaces the
// entire desktop draw pass. Switching clamps at the ends of the list.
type Switcher struct {
	visible  bool
	progress float64
	spaces   []Workspace
	current  int
}

// NewSwitcher creates a hidden switcher over the given workspaces.
func NewSwitcher(spaces []Workspace) *Switcher {
	return &Switcher{spaces: spaces}
}

// Visible reports whether the switcher is active this frame.
func (sw *Switcher) Visible() bool { return sw.visible }

// Current returns the index of the current workspace.
func (sw *Switcher) Current() int { return sw.current }

// Workspaces returns the workspace list.
func (sw *Switcher) Workspaces() []Workspace { return sw.spaces }

// Progress returns the entry-transition progress in [0,1].
func (sw *Switcher) Progress() float64 { return sw.progress }

// Show activates the switcher and restarts its entry transition.
func (sw *Switcher) Show() {
	sw.visible = true
	sw.progress = 0
}

// Hide deactivates the switcher, abandoning any transition in flight.
func (sw *Switcher) Hide() {
	sw.visible = false
}

// Update advances the entry transition while visible, capped at 1.
func (sw *Switcher) Update() {
	if sw.visible && sw.progress < 1.0 {
		sw.progress += 0.05
		if sw.progress > 1.0 {
			sw.progress = 1.0
		}
	}
}

// Switch moves the workspace cursor forward or backward, clamping at the
// list boundaries.
func (sw *Switcher) Switch(direction int) {
	if direction > 0 && sw.current < len(sw.spaces)-1 {
		sw.current++
	} else if direction < 0 && sw.current > 0 {
		sw.current--
	}
}

// Draw replaces the desktop pass with the workspace overview.
func (sw *Switcher) Draw(s *gfx.Surface) {
	if !sw.visible {
		return
	}

	s.FillRect(0, 0, s.Width(), s.Height(), gfx.Color{R: 20, G: 20, B: 20})

	const (
		spaceW  = 200
		spaceH  = 150
		spacing = 220
		startY  = 100
	)
	startX := (s.Width() - (len(sw.spaces)*spacing - 20)) / 2

	for i, space := range sw.spaces {
		x := startX + i*spacing

		border := gfx.Gray
		if i == sw.current {
			border = gfx.Blue
		}
		s.DrawOutline(x-2, startY-2, spaceW+4, spaceH+4, border)
		s.FillRect(x, startY, spaceW, spaceH, space.Wallpaper)

		// Thumbnail windows.
		s.FillRect(x+20, startY+20, 60, 40, gfx.White)
		s.FillRect(x+90, startY+30, 80, 50, gfx.Black)

		label := fmt.Sprintf("Desktop %d", space.ID+1)
		if i == sw.current {
			label = "Current " + label
		}
		s.DrawText(label, x+40, startY+spaceH+10, gfx.White)
	}

	s.DrawText("Arrows switch desktops, esc leaves", 180, s.Height()-80, gfx.LightGray)

	// Entry fade: the overview brightens in from black.
	if sw.progress < 1.0 {
		s.BlendRect(0, 0, s.Width(), s.Height(), gfx.Black, 1.0-sw.progress)
	}
}
