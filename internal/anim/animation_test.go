package anim

import (
	"math"
	"testing"
)

func TestEaseCurves(t *testing.T) {
	cases := []struct {
		easing Easing
		t      float64
		want   float64
	}{
		{Linear, 0.25, 0.25},
		{Linear, 1.0, 1.0},
		{EaseIn, 0.5, 0.25},
		{EaseOut, 0.5, 0.75},
		{EaseInOut, 0.25, 0.125},
		{EaseInOut, 0.75, 0.875},
		{EaseInOut, 0.0, 0.0},
		{EaseInOut, 1.0, 1.0},
	}

	for _, c := range cases {
		got := Ease(c.easing, c.t)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Ease(%v, %v) = %v, want %v", c.easing, c.t, got, c.want)
		}
	}
}

func TestEaseEndpoints(t *testing.T) {
	for _, e := range []Easing{Linear, EaseIn, EaseOut, EaseInOut} {
		if got := Ease(e, 0); got != 0 {
			t.Errorf("Ease(%v, 0) = %v, want 0", e, got)
		}
		if got := Ease(e, 1); got != 1 {
			t.Errorf("Ease(%v, 1) = %v, want 1", e, got)
		}
	}
}

func TestAnimationReachesExactEnd(t *testing.T) {
	a := New(0, 100, 10, EaseInOut)

	var last float64
	for i := 0; i < 10; i++ {
		last = a.Advance()
	}

	if last != 100 {
		t.Errorf("Expected exactly 100 on the final tick, got %v", last)
	}
	if !a.Complete {
		t.Error("Expected animation to be complete after duration ticks")
	}
}

func TestAnimationAdvanceAfterCompleteIsNoop(t *testing.T) {
	a := New(5, 50, 3, Linear)
	for i := 0; i < 3; i++ {
		a.Advance()
	}

	for i := 0; i < 20; i++ {
		if got := a.Advance(); got != 50 {
			t.Fatalf("Advance after completion returned %v, want 50", got)
		}
	}
	if a.Elapsed != 3 {
		t.Errorf("Elapsed grew past duration: %d", a.Elapsed)
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	a := New(10, 20, 0, EaseOut)

	if got := a.Advance(); got != 20 {
		t.Errorf("First advance of zero-duration animation = %v, want 20", got)
	}
	if !a.Complete {
		t.Error("Zero-duration animation must complete on first advance")
	}
}

func TestAnimationNeverOvershoots(t *testing.T) {
	a := New(0, 100, 7, EaseOut)
	prev := 0.0
	for i := 0; i < 7; i++ {
		v := a.Advance()
		if v < prev-1e-9 || v > 100+1e-9 {
			t.Fatalf("Tick %d produced out-of-range value %v", i+1, v)
		}
		prev = v
	}
}

func TestValueDoesNotAdvance(t *testing.T) {
	a := New(0, 100, 10, Linear)
	a.Advance()

	before := a.Elapsed
	v1 := a.Value()
	v2 := a.Value()
	if a.Elapsed != before {
		t.Error("Value() must not advance elapsed time")
	}
	if v1 != v2 {
		t.Errorf("Value() not stable: %v vs %v", v1, v2)
	}
}

func TestGroupShortMembersHold(t *testing.T) {
	g := &Group{
		X:      New(0, 10, 2, Linear),
		Y:      New(0, 10, 5, Linear),
		Width:  New(0, 10, 5, Linear),
		Height: New(0, 10, 5, Linear),
		Alpha:  New(0, 1, 5, Linear),
	}

	for i := 0; i < 3; i++ {
		g.Advance()
	}
	if !g.X.Complete {
		t.Fatal("Short member should have finished")
	}
	if g.Done() {
		t.Fatal("Group must not report done while long members run")
	}

	var x float64
	for i := 0; i < 2; i++ {
		x, _, _, _, _ = g.Advance()
	}
	if x != 10 {
		t.Errorf("Finished member must hold its end value, got %v", x)
	}
	if !g.Done() {
		t.Error("Group should be done once every member completes")
	}
}

func TestGroupPresets(t *testing.T) {
	m := MinimizeToDock(80, 80, 500, 350, 300, 420)
	for !m.Done() {
		m.Advance()
	}
	if m.Width.End != 64 || m.Height.End != 64 {
		t.Errorf("Minimize preset should end at dock tile size, got %vx%v", m.Width.End, m.Height.End)
	}

	s := SpringOpen(120, 60, 520, 400)
	_, _, w, h, alpha := s.Advance()
	if w >= 520 || h >= 400 || alpha >= 1 {
		t.Errorf("Spring open must start below its targets, got w=%v h=%v a=%v", w, h, alpha)
	}
}
