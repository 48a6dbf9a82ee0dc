package anim

// Easing selects the curve shaping an animation's velocity.
type Easing int

const (
	EaseInOut Easing = iota
	EaseIn
	EaseOut
	Linear
)

func (e Easing) String() string {
	switch e {
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case Linear:
		return "linear"
	default:
		return "ease-in-out"
	}
}

// Ease maps normalized time t in [0,1] to normalized progress. Callers clamp
// t by construction (elapsed/duration).
func Ease(e Easing, t float64) float64 {
	switch e {
	case Linear:
		return t
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - (1-t)*(1-t)
	default: // EaseInOut
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	}
}
