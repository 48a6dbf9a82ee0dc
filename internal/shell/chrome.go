package shell

import (
	"fmt"
	"math"

	"github.com/sigma/mirage/internal/gfx"
)

var (
	menuBarTint  = gfx.Color{R: 248, G: 248, B: 248}
	dockTint     = gfx.Color{R: 235, G: 235, B: 240}
	particleTint = gfx.Color{R: 255, G: 255, B: 255}
)

// drawWallpaper fills the desktop with a vertical gradient off the configured
// wallpaper color, then scatters slow drifting particles over it.
func (sh *Shell) drawWallpaper(s *gfx.Surface) {
	s.FillVGradient(0, 0, s.Width(), s.Height(), rgb(sh.cfg.Desktop.Wallpaper), 0.45)

	t := float64(sh.tick)
	for i := 0; i < 24; i++ {
		fi := float64(i)
		x := int(math.Mod(fi*137.5+t*(0.2+math.Mod(fi, 3.0)*0.1), float64(s.Width())))
		y := int(math.Mod(fi*89.3+math.Sin(t*0.01+fi)*12, float64(s.Height())))
		if y < 0 {
			y += s.Height()
		}
		s.BlendRect(x, y, 2, 2, particleTint, 0.25)
	}
}

// drawMenuBar renders the top bar: app name bold-ish on the left, menu labels
// after it, the tick-derived clock on the right.
func (sh *Shell) drawMenuBar(s *gfx.Surface) {
	h := sh.cfg.Desktop.MenuBarHeight
	if h <= 0 {
		return
	}
	s.BlendRect(0, 0, s.Width(), h, menuBarTint, 0.92)

	textY := (h - gfx.GlyphHeight) / 2
	x := 12
	s.DrawText(sh.cfg.AppName, x, textY, gfx.Black)
	x += s.TextWidth(sh.cfg.AppName) + 20
	for _, label := range []string{"File", "Edit", "View", "Window", "Help"} {
		s.DrawText(label, x, textY, gfx.DarkGray)
		x += s.TextWidth(label) + 16
	}

	clock := sh.clockString()
	s.DrawText(clock, s.Width()-s.TextWidth(clock)-12, textY, gfx.Black)
}

// clockString formats a wall-clock reading advanced by the frame counter,
// one simulated second per 60 ticks, starting from 9:41 AM.
func (sh *Shell) clockString() string {
	total := uint32(9*3600+41*60) + sh.tick/60
	hours := (total / 3600) % 24
	minutes := (total / 60) % 60
	seconds := total % 60

	suffix := "AM"
	display := hours
	if hours >= 12 {
		suffix = "PM"
		if hours > 12 {
			display = hours - 12
		}
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d:%02d %s", display, minutes, seconds, suffix)
}

// drawDock renders the bottom dock: one tile per window plus the trash, with
// running-indicator dots and a periodic bounce on the focused tile.
func (sh *Shell) drawDock(s *gfx.Surface) {
	dh := sh.cfg.Desktop.DockHeight
	if dh <= 0 {
		return
	}
	top := s.Height() - dh

	const (
		tile    = 40
		spacing = 52
	)
	count := sh.stack.Len() + 1 // trash
	totalW := count*spacing + 16
	dockX := (s.Width() - totalW) / 2

	s.BlendRect(dockX, top+6, totalW, dh-12, dockTint, 0.8)
	s.DrawOutline(dockX, top+6, totalW, dh-12, gfx.Gray)

	x := dockX + 8
	tileY := top + (dh-tile)/2
	for i := 0; i < sh.stack.Len(); i++ {
		w := sh.stack.Window(i)
		y := tileY
		if w.Focused && sh.tick%120 < 60 {
			bounce := math.Sin(float64(sh.tick%60) / 60 * math.Pi)
			y -= int(bounce * 8)
		}
		s.FillRoundedRect(x, y, tile, tile, w.Background)
		s.DrawOutline(x, y, tile, tile, gfx.DarkGray)
		if len(w.Title) > 0 {
			initial := string(w.Title[0])
			s.DrawText(initial, x+(tile-s.TextWidth(initial))/2, y+(tile-gfx.GlyphHeight)/2, gfx.Black)
		}
		// Running indicator.
		s.FillRect(x+tile/2-2, top+dh-8, 4, 4, gfx.DarkGray)
		x += spacing
	}

	// Trash tile, never running.
	s.FillRoundedRect(x, tileY, tile, tile, gfx.Gray)
	s.DrawOutline(x, tileY, tile, tile, gfx.DarkGray)
	s.DrawText("T", x+(tile-s.TextWidth("T"))/2, tileY+(tile-gfx.GlyphHeight)/2, gfx.White)
}

// cursorSprite is an 11x16 arrow: 1 = white fill, 2 = black border.
var cursorSprite = [16][11]uint8{
	{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 1, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 1, 1, 2, 0, 0, 0, 0, 0, 0, 0},
	{2, 1, 1, 1, 2, 0, 0, 0, 0, 0, 0},
	{2, 1, 1, 1, 1, 2, 0, 0, 0, 0, 0},
	{2, 1, 1, 1, 1, 1, 2, 0, 0, 0, 0},
	{2, 1, 1, 1, 1, 1, 1, 2, 0, 0, 0},
	{2, 1, 1, 1, 1, 1, 1, 1, 2, 0, 0},
	{2, 1, 1, 1, 1, 1, 1, 1, 1, 2, 0},
	{2, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2},
	{2, 1, 1, 2, 1, 2, 0, 0, 0, 0, 0},
	{2, 1, 2, 0, 2, 1, 2, 0, 0, 0, 0},
	{2, 2, 0, 0, 2, 1, 2, 0, 0, 0, 0},
	{2, 0, 0, 0, 0, 2, 1, 2, 0, 0, 0},
	{0, 0, 0, 0, 0, 2, 2, 2, 0, 0, 0},
}

// drawCursor stamps the pointer sprite with a soft drop shadow.
func (sh *Shell) drawCursor(s *gfx.Surface, x, y int) {
	for row := 0; row < len(cursorSprite); row++ {
		for col := 0; col < len(cursorSprite[row]); col++ {
			if cursorSprite[row][col] != 0 {
				s.BlendRect(x+col+2, y+row+2, 1, 1, gfx.Black, 0.3)
			}
		}
	}
	for row := 0; row < len(cursorSprite); row++ {
		for col := 0; col < len(cursorSprite[row]); col++ {
			switch cursorSprite[row][col] {
			case 1:
				s.SetPixel(x+col, y+row, gfx.White)
			case 2:
				s.SetPixel(x+col, y+row, gfx.Black)
			}
		}
	}
}
