package compositor

import "github.com/sigma/mirage/internal/gfx"

// Sample content tables. These are display fixtures only; which table a
// window uses is decided by its ContentKind.

var fileGrid = []string{
	"Projects", "Photos", "Resume.pdf", "Budget.xlsx",
	"Music", "Videos", "Notes.txt", "Archive.zip",
}

var fileFavorites = []string{
	"AirDrop", "Recents", "Home", "Desktop", "Documents", "Downloads",
}

var terminalLines = []string{
	"Last login: Thu Jun 19 12:34:56 on ttys000",
	"mirage:~ user$ ls -la",
	"total 42",
	"drwxr-xr-x   8 user  staff   256 Jun 19 12:34 .",
	"drwxr-xr-x   3 root  admin    96 Jun 19 12:30 ..",
	"drwxr-xr-x   5 user  staff   160 Jun 19 12:32 Documents",
	"-rw-r--r--   1 user  staff  1024 Jun 19 12:33 README.md",
	"mirage:~ user$ go version",
	"go version go1.24 linux/amd64",
	"mirage:~ user$ _",
}

var settingsTiles = []struct {
	Title string
	Desc  string
}{
	{"General", "Appearance, accent"},
	{"Desktop", "Wallpaper, saver"},
	{"Network", "Wi-Fi, Ethernet"},
	{"Security", "Privacy, firewall"},
	{"Sound", "Effects, output"},
	{"Keyboard", "Repeat, shortcuts"},
}

var browserLinks = []string{
	"Installation Guide",
	"System Requirements",
	"Window Management",
	"Dock and Menu Bar",
	"Search Overlay",
}

func drawContent(s *gfx.Surface, kind ContentKind, r Rect) {
	switch kind {
	case ContentFiles:
		drawFilesContent(s, r)
	case ContentTerminal:
		drawTerminalContent(s, r)
	case ContentSettings:
		drawSettingsContent(s, r)
	case ContentBrowser:
		drawBrowserContent(s, r)
	}
}

func drawFilesContent(s *gfx.Surface, r Rect) {
	// Toolbar with path.
	s.FillRect(r.X+1, r.Y, r.W-2, 40, gfx.Color{R: 248, G: 248, B: 248})
	s.DrawText("< >", r.X+10, r.Y+13, gfx.Black)
	s.DrawText("Home > Documents", r.X+60, r.Y+13, gfx.Black)

	// Sidebar.
	const sidebarWidth = 120
	s.FillRect(r.X+1, r.Y+40, sidebarWidth, r.H-41, gfx.Color{R: 245, G: 245, B: 247})
	s.DrawText("FAVORITES", r.X+10, r.Y+52, gfx.Color{R: 142, G: 142, B: 147})
	for i, item := range fileFavorites {
		s.DrawText(item, r.X+10, r.Y+72+i*20, gfx.Black)
	}

	// File grid, four columns.
	mainX := r.X + sidebarWidth + 1
	for i, name := range fileGrid {
		col := i % 4
		row := i / 4
		x := mainX + 20 + col*100
		y := r.Y + 60 + row*80
		s.FillRoundedRect(x+16, y, 28, 22, gfx.Color{R: 120, G: 170, B: 255})
		s.DrawText(name, x, y+28, gfx.Black)
	}
}

func drawTerminalContent(s *gfx.Surface, r Rect) {
	for i, line := range terminalLines {
		y := r.Y + 10 + i*16
		color := gfx.White
		switch {
		case len(line) > 7 && line[:7] == "mirage:":
			color = gfx.Green
		case line == "total 42" || len(line) > 2 && line[:3] == "go ":
			color = gfx.Yellow
		}
		s.DrawText(line, r.X+10, y, color)
	}
}

func drawSettingsContent(s *gfx.Surface, r Rect) {
	for i, tile := range settingsTiles {
		col := i % 3
		row := i / 3
		x := r.X + 20 + col*130
		y := r.Y + 20 + row*100
		s.FillRoundedRect(x, y, 80, 60, gfx.White)
		s.DrawOutline(x, y, 80, 60, gfx.LightGray)
		s.DrawText(tile.Title, x, y+64, gfx.Black)
		s.DrawText(tile.Desc, x-20, y+80, gfx.Gray)
	}
}

func drawBrowserContent(s *gfx.Surface, r Rect) {
	// Tab strip and address bar.
	s.FillRect(r.X+1, r.Y, r.W-2, 40, gfx.Color{R: 235, G: 235, B: 235})
	s.DrawText("Mirage Docs", r.X+20, r.Y+13, gfx.Black)
	s.FillRoundedRect(r.X+80, r.Y+10, r.W-160, 24, gfx.White)
	s.DrawOutline(r.X+80, r.Y+10, r.W-160, 24, gfx.LightGray)
	s.DrawText("https://mirage.dev/docs", r.X+90, r.Y+16, gfx.Black)

	y := r.Y + 60
	s.DrawText("Mirage Documentation", r.X+20, y, gfx.Black)
	s.DrawText("A scripted desktop shell compositor", r.X+20, y+22, gfx.Gray)
	s.DrawText("Getting Started", r.X+20, y+54, gfx.Blue)
	for i, link := range browserLinks {
		s.DrawText("- "+link, r.X+30, y+76+i*20, gfx.Black)
	}
}
