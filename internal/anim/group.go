package anim

// Group bundles the animations of one logical window transition. Members may
// carry different durations; short ones finish first and hold their end value
// until the whole group reports done.
type Group struct {
	X      *Animation
	Y      *Animation
	Width  *Animation
	Height *Animation
	Alpha  *Animation
}

// MinimizeToDock shrinks a window from its rectangle to a dock tile while
// fading it slightly.
func MinimizeToDock(startX, startY, startW, startH, dockX, dockY float64) *Group {
	return &Group{
		X:      New(startX, dockX, 30, EaseInOut),
		Y:      New(startY, dockY, 30, EaseInOut),
		Width:  New(startW, 64, 30, EaseInOut),
		Height: New(startH, 64, 30, EaseInOut),
		Alpha:  New(1.0, 0.8, 30, EaseOut),
	}
}

// SpringOpen grows a window from nothing at its anchor point.
func SpringOpen(x, y, endW, endH float64) *Group {
	return &Group{
		X:      New(x, x, 20, EaseOut),
		Y:      New(y, y, 20, EaseOut),
		Width:  New(0, endW, 20, EaseOut),
		Height: New(0, endH, 20, EaseOut),
		Alpha:  New(0, 1.0, 20, EaseOut),
	}
}

// Advance steps every member one tick and returns the current tuple.
func (g *Group) Advance() (x, y, w, h, alpha float64) {
	return g.X.Advance(), g.Y.Advance(), g.Width.Advance(), g.Height.Advance(), g.Alpha.Advance()
}

// Done reports whether every member animation has completed.
func (g *Group) Done() bool {
	return g.X.Complete && g.Y.Complete && g.Width.Complete && g.Height.Complete && g.Alpha.Complete
}
