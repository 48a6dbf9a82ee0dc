package compositor

import (
	"log"

	"github.com/sigma/mirage/internal/gfx"
)

// Stack is the window compositor: an ordered window list where slice order is
// z-order (index 0 = bottom) with a single nullable focus index. The focused
// window is always emitted last by DrawAll.
type Stack struct {
	windows []*Window
	focused int // -1 when no window is focused

	screenW, screenH int
	menuBarHeight    int
	dockHeight       int

	nextID int
}

// NewStack creates an empty stack for a desktop of the given dimensions. The
// menu bar and dock bands bound the rectangle used by Maximize.
func NewStack(screenW, screenH, menuBarHeight, dockHeight int) *Stack {
	return &Stack{focused: -1, screenW: screenW, screenH: screenH, menuBarHeight: menuBarHeight, dockHeight: dockHeight}
}

// Len returns the number of windows in the stack.
func (st *Stack) Len() int { return len(st.windows) }

// FocusedIndex returns the focus index, or -1 if nothing is focused.
func (st *Stack) FocusedIndex() int { return st.focused }

// Window returns the window at index, or nil if the index is invalid.
func (st *Stack) Window(index int) *Window {
	if index < 0 || index >= len(st.windows) {
		return nil
	}
	return st.windows[index]
}

// Add appends a window to the top of the z-order. The window becomes focused
// iff the stack was empty before the insertion.
func (st *Stack) Add(title string, kind ContentKind, r Rect, bg gfx.Color) *Window {
	w := NewWindow(st.nextID, title, kind, r, bg)
	st.nextID++

	w.Focused = len(st.windows) == 0
	st.windows = append(st.windows, w)
	if st.focused < 0 {
		st.focused = 0
	}
	return w
}

// Focus moves focus to index. Invalid indices are ignored.
func (st *Stack) Focus(index int) {
	if index < 0 || index >= len(st.windows) {
		return
	}
	st.setFocus(index)
}

func (st *Stack) setFocus(index int) {
	st.focused = index
	for i, w := range st.windows {
		w.Focused = i == index
	}
}

// Close removes the window at index and re-derives focus: the window just
// below the closed one if it exists and is not minimized, otherwise the first
// non-minimized window from the bottom, otherwise none.
func (st *Stack) Close(index int) {
	if index < 0 || index >= len(st.windows) {
		return
	}

	closedFocused := st.focused == index
	st.windows = append(st.windows[:index], st.windows[index+1:]...)

	switch {
	case len(st.windows) == 0:
		st.focused = -1
	case closedFocused:
		candidate := 0
		if index > 0 {
			candidate = index - 1
		}
		if st.windows[candidate].Minimized {
			candidate = st.firstRestored()
		}
		if candidate < 0 {
			st.focused = -1
			for _, w := range st.windows {
				w.Focused = false
			}
		} else {
			st.setFocus(candidate)
		}
	case st.focused > index:
		st.focused--
	}
}

// Minimize toggles the minimized flag. Minimizing the focused window hands
// focus to the first non-minimized window in ascending order, or clears it.
// Restoring a window while nothing is focused focuses it.
func (st *Stack) Minimize(index int) {
	w := st.Window(index)
	if w == nil {
		return
	}

	if w.Minimized {
		w.Minimized = false
		if st.focused < 0 {
			st.setFocus(index)
		}
		return
	}

	w.Minimized = true
	if st.focused == index {
		next := st.firstRestored()
		if next < 0 {
			st.focused = -1
			for _, win := range st.windows {
				win.Focused = false
			}
		} else {
			st.setFocus(next)
		}
	}
}

// Maximize toggles between a full-desktop rectangle (minus the menu bar and
// dock bands) and the geometry the window had before maximizing.
func (st *Stack) Maximize(index int) {
	w := st.Window(index)
	if w == nil {
		return
	}

	if w.Maximized {
		w.Maximized = false
		w.Rect = w.restore
		return
	}

	w.restore = w.Rect
	w.Maximized = true
	w.Rect = Rect{
		X: 0,
		Y: st.menuBarHeight,
		W: st.screenW,
		H: st.screenH - st.menuBarHeight - st.dockHeight,
	}
}

// HitTest returns the index of the topmost non-minimized window containing
// the point, or -1.
func (st *Stack) HitTest(x, y int) int {
	for i := len(st.windows) - 1; i >= 0; i-- {
		w := st.windows[i]
		if !w.Minimized && w.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Update advances in-flight window transitions, releasing them on completion.
func (st *Stack) Update() {
	for _, w := range st.windows {
		if w.Motion == nil {
			continue
		}
		w.Motion.Advance()
		if w.Motion.Done() {
			log.Printf("Window %q transition finished", w.Title)
			w.Motion = nil
		}
	}
}

// DrawAll renders every window back-to-front with the focused window last.
// It is a pure read: no focus or animation state changes here.
func (st *Stack) DrawAll(s *gfx.Surface) {
	for i, w := range st.windows {
		if i != st.focused {
			w.Draw(s)
		}
	}
	if st.focused >= 0 && st.focused < len(st.windows) {
		st.windows[st.focused].Draw(s)
	}
}

func (st *Stack) firstRestored() int {
	for i, w := range st.windows {
		if !w.Minimized {
			return i
		}
	}
	return -1
}
