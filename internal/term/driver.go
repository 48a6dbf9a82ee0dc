package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sigma/mirage/internal/gfx"
	"github.com/sigma/mirage/internal/shell"
)

// Driver presents the composited surface in a terminal using half-block
// characters, two surface rows per cell, and feeds key presses back into the
// shell's control queue.
type Driver struct {
	screen tcell.Screen
	shell  *shell.Shell
}

// NewDriver creates a driver over an initialized shell.
func NewDriver(sh *shell.Shell) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return &Driver{screen: screen, shell: sh}, nil
}

// Run owns the terminal until the user quits. Each tick runs one
// Update/Draw/present cycle; key events become control commands applied at
// the next frame boundary.
func (d *Driver) Run(surface *gfx.Surface, tickMillis int) error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer d.screen.Fini()
	d.screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Duration(tickMillis) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.shell.Update()
			d.shell.Draw(surface)
			d.present(surface)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				d.screen.Sync()
			case *tcell.EventKey:
				if d.handleKey(ev) {
					return nil
				}
			}
		case <-quit:
			return nil
		}
	}
}

// handleKey maps a key press to a shell action. Returns true on quit.
func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	push := func(action shell.Action, arg string) {
		d.shell.Control().Push(shell.Command{Action: action, Arg: arg})
	}

	searching := d.shell.Overlays().Search.Visible()

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		switch {
		case searching:
			push(shell.ActionSearchHide, "")
		case d.shell.Overlays().Switcher.Visible():
			push(shell.ActionSwitcherHide, "")
		case d.shell.Overlays().Modal.Visible():
			push(shell.ActionModalHide, "")
		default:
			return true
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if searching {
			push(shell.ActionSearchBackspace, "")
		}
	case tcell.KeyDown:
		if searching {
			push(shell.ActionSearchNext, "")
		}
	case tcell.KeyUp:
		if searching {
			push(shell.ActionSearchPrev, "")
		}
	case tcell.KeyRight:
		if d.shell.Overlays().Switcher.Visible() {
			push(shell.ActionSwitcherNext, "")
		}
	case tcell.KeyLeft:
		if d.shell.Overlays().Switcher.Visible() {
			push(shell.ActionSwitcherPrev, "")
		}
	case tcell.KeyTab:
		if d.shell.Overlays().Switcher.Visible() {
			push(shell.ActionSwitcherHide, "")
		} else {
			push(shell.ActionSwitcherShow, "")
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if searching {
			push(shell.ActionSearchType, string(r))
			break
		}
		switch r {
		case 'q':
			return true
		case '/':
			push(shell.ActionSearchShow, "")
		case 'a':
			push(shell.ActionModalShow, "")
		case 'm':
			push(shell.ActionWindowMinimize, focusedArg(d.shell))
		case 'f':
			push(shell.ActionWindowMaximize, focusedArg(d.shell))
		case 'x':
			push(shell.ActionWindowClose, focusedArg(d.shell))
		case 'n':
			push(shell.ActionNotify, "Mirage:Keyboard test notification")
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			push(shell.ActionWindowFocus, string(r-1))
		}
	}
	return false
}

func focusedArg(sh *shell.Shell) string {
	return fmt.Sprintf("%d", sh.Stack().FocusedIndex())
}

// present paints the surface onto the terminal. Each cell carries two
// vertically stacked pixels via '▀': foreground is the upper pixel, background
// the lower. The surface is nearest-neighbor sampled to the terminal size.
func (d *Driver) present(surface *gfx.Surface) {
	cols, rows := d.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	sw, sh := surface.Width(), surface.Height()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			sx := cx * sw / cols
			topY := (cy * 2) * sh / (rows * 2)
			botY := (cy*2 + 1) * sh / (rows * 2)

			top := surface.At(sx, topY)
			bot := surface.At(sx, botY)

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			d.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	d.screen.Show()
}
