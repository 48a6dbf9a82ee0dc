package shell

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/sigma/mirage/internal/anim"
	"github.com/sigma/mirage/internal/compositor"
	"github.com/sigma/mirage/internal/config"
	"github.com/sigma/mirage/internal/gfx"
	"github.com/sigma/mirage/internal/notification"
	"github.com/sigma/mirage/internal/overlay"
)

// Shell owns the whole desktop: window stack, overlays, notification queue,
// scripted storyline and the frame counter. One Update followed by one Draw
// is a frame; nothing else writes to the surface.
type Shell struct {
	cfg *config.Config

	stack         *compositor.Stack
	overlays      *overlay.Manager
	notifications *notification.Queue
	script        *Script
	control       *ControlQueue

	tick           uint32
	mouseX, mouseY int
}

// New builds a shell from config. The scripted storyline is compiled here so
// bad actions fail at startup, not mid-run.
func New(cfg *config.Config) (*Shell, error) {
	script, err := NewScript(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("failed to compile script: %w", err)
	}

	catalog := make([]overlay.CatalogEntry, 0, len(cfg.Search.Catalog))
	for _, item := range cfg.Search.Catalog {
		catalog = append(catalog, overlay.CatalogEntry{Name: item.Name, Category: item.Category})
	}

	spaces := make([]overlay.Workspace, 0, len(cfg.Workspaces))
	for i, ws := range cfg.Workspaces {
		spaces = append(spaces, overlay.Workspace{ID: i, Wallpaper: rgb(ws.Wallpaper)})
	}

	opts := notification.Options{
		StartX:     float64(cfg.Notifications.StartX),
		RestX:      float64(cfg.Notifications.RestX),
		TopY:       cfg.Notifications.TopY,
		Width:      cfg.Notifications.Width,
		Height:     cfg.Notifications.Height,
		Spacing:    cfg.Notifications.Spacing,
		SlideTicks: uint32(cfg.Notifications.SlideTicks),
		Lifetime:   uint32(cfg.Notifications.Lifetime),
	}

	return &Shell{
		cfg:           cfg,
		stack:         compositor.NewStack(cfg.Screen.Width, cfg.Screen.Height, cfg.Desktop.MenuBarHeight, cfg.Desktop.DockHeight),
		overlays:      overlay.NewManager(catalog, spaces, cfg.Modal.Title, cfg.Modal.Lines),
		notifications: notification.NewQueue(opts),
		script:        script,
		control:       NewControlQueue(),
		mouseX:        cfg.Screen.Width / 2,
		mouseY:        cfg.Screen.Height / 2,
	}, nil
}

// Stack exposes the window compositor.
func (sh *Shell) Stack() *compositor.Stack { return sh.stack }

// Overlays exposes the overlay state machine.
func (sh *Shell) Overlays() *overlay.Manager { return sh.overlays }

// Notifications exposes the notification queue.
func (sh *Shell) Notifications() *notification.Queue { return sh.notifications }

// Control returns the queue external inputs push commands into.
func (sh *Shell) Control() *ControlQueue { return sh.control }

// Tick returns the current frame counter.
func (sh *Shell) Tick() uint32 { return sh.tick }

// Init creates the starter windows and seeds the notification stack. The
// first window added gets initial focus.
func (sh *Shell) Init() {
	for _, w := range sh.cfg.Windows {
		sh.stack.Add(w.Title, compositor.ParseContentKind(w.Content),
			compositor.Rect{X: w.X, Y: w.Y, W: w.Width, H: w.Height}, rgb(w.Color))
	}
	for _, seed := range sh.cfg.Notifications.Seed {
		sh.notifications.Enqueue(seed.Title, seed.Message)
	}
	log.Printf("Shell initialized: %d windows, %d seed notifications", sh.stack.Len(), sh.notifications.Len())
}

// Update advances one frame. Order is fixed: window transitions, overlay
// transitions, scripted events due at this tick, externally injected
// commands, then notification aging. State is fully settled before Draw.
func (sh *Shell) Update() {
	sh.tick++

	sh.stack.Update()
	sh.overlays.Update()

	for _, ev := range sh.script.Due(sh.tick) {
		sh.Apply(ev.Action, ev.Arg)
	}
	for _, cmd := range sh.control.Drain() {
		sh.Apply(cmd.Action, cmd.Arg)
	}

	sh.notifications.Update()

	// Pointer drift along a Lissajous path.
	t := float64(sh.tick)
	sh.mouseX = sh.cfg.Screen.Width/2 + int(math.Sin(t*0.1)*50)
	sh.mouseY = sh.cfg.Screen.Height/2 + int(math.Cos(t*0.08)*30)
}

// Apply performs one action against the shell. Unknown window indices and
// operations on hidden overlays are silent no-ops.
func (sh *Shell) Apply(action Action, arg string) {
	switch action {
	case ActionSearchShow:
		sh.overlays.Search.Show()
	case ActionSearchHide:
		sh.overlays.Search.Hide()
	case ActionSearchType:
		for _, ch := range arg {
			sh.overlays.Search.AppendChar(ch)
		}
	case ActionSearchBackspace:
		sh.overlays.Search.Backspace()
	case ActionSearchNext:
		sh.overlays.Search.MoveSelection(1)
	case ActionSearchPrev:
		sh.overlays.Search.MoveSelection(-1)
	case ActionSwitcherShow:
		sh.overlays.Switcher.Show()
	case ActionSwitcherHide:
		sh.overlays.Switcher.Hide()
	case ActionSwitcherNext:
		sh.overlays.Switcher.Switch(1)
	case ActionSwitcherPrev:
		sh.overlays.Switcher.Switch(-1)
	case ActionModalShow:
		sh.overlays.Modal.Show()
	case ActionModalHide:
		sh.overlays.Modal.Hide()
	case ActionNotify:
		title, message := splitArg(arg)
		sh.notifications.Enqueue(title, message)
	case ActionWindowFocus:
		sh.stack.Focus(atoi(arg))
	case ActionWindowClose:
		sh.stack.Close(atoi(arg))
	case ActionWindowMinimize:
		sh.minimizeWindow(atoi(arg))
	case ActionWindowMaximize:
		sh.stack.Maximize(atoi(arg))
	case ActionWindowOpen:
		sh.openWindow(arg)
	}
}

// minimizeWindow toggles minimize and, when hiding, attaches the
// minimize-to-dock transition anchored at the dock band.
func (sh *Shell) minimizeWindow(index int) {
	w := sh.stack.Window(index)
	if w == nil {
		return
	}
	wasMinimized := w.Minimized
	sh.stack.Minimize(index)
	if !wasMinimized && w.Minimized {
		dockX := float64(sh.cfg.Screen.Width/2 - 32)
		dockY := float64(sh.cfg.Screen.Height - sh.cfg.Desktop.DockHeight)
		w.Motion = anim.MinimizeToDock(float64(w.Rect.X), float64(w.Rect.Y),
			float64(w.Rect.W), float64(w.Rect.H), dockX, dockY)
	}
}

// openWindow spawns a new window from a "Title:kind" argument with a
// spring-open transition, cascaded off the current stack depth.
func (sh *Shell) openWindow(arg string) {
	title, kind := splitArg(arg)
	if title == "" {
		return
	}
	offset := 40 + sh.stack.Len()*24
	r := compositor.Rect{X: offset, Y: offset, W: 420, H: 300}
	w := sh.stack.Add(title, compositor.ParseContentKind(kind), r, gfx.White)
	w.Motion = anim.SpringOpen(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	sh.stack.Focus(sh.stack.Len() - 1)
}

// Draw emits one full composited frame: wallpaper, windows back-to-front,
// menu bar, dock, layered overlays, notifications, pointer. A visible
// workspace switcher replaces everything but the wallpaper pass.
func (sh *Shell) Draw(s *gfx.Surface) {
	sh.drawWallpaper(s)

	if sh.overlays.SuppressesDesktop() {
		sh.overlays.DrawSuppressing(s)
		return
	}

	sh.stack.DrawAll(s)
	sh.drawMenuBar(s)
	sh.drawDock(s)
	sh.overlays.DrawLayered(s)
	sh.notifications.Draw(s)
	sh.drawCursor(s, sh.mouseX, sh.mouseY)
}

func splitArg(arg string) (string, string) {
	if i := strings.IndexByte(arg, ':'); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return arg, ""
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}

func rgb(c config.RGB) gfx.Color {
	return gfx.Color{R: c[0], G: c[1], B: c[2]}
}
