package anim

// Animation interpolates a scalar from Start to End over Duration ticks.
// Once complete it latches: further Advance calls are no-ops returning End.
type Animation struct {
	Start    float64
	End      float64
	Duration uint32
	Elapsed  uint32
	Easing   Easing
	Complete bool
}

// New creates an animation. A zero duration completes on the first Advance.
func New(start, end float64, duration uint32, easing Easing) *Animation {
	return &Animation{Start: start, End: end, Duration: duration, Easing: easing}
}

// Advance moves the animation forward by one tick and returns the current
// value. On the tick that reaches Duration it returns exactly End, with no
// overshoot; afterwards Elapsed stays latched at Duration.
func (a *Animation) Advance() float64 {
	if a.Complete {
		return a.End
	}

	a.Elapsed++

	if a.Elapsed >= a.Duration {
		a.Elapsed = a.Duration
		a.Complete = true
		return a.End
	}

	t := float64(a.Elapsed) / float64(a.Duration)
	return a.Start + (a.End-a.Start)*Ease(a.Easing, t)
}

// Value returns the current value without advancing time.
func (a *Animation) Value() float64 {
	if a.Complete || a.Duration == 0 {
		return a.End
	}
	if a.Elapsed == 0 {
		return a.Start
	}
	t := float64(a.Elapsed) / float64(a.Duration)
	return a.Start + (a.End-a.Start)*Ease(a.Easing, t)
}
