package tween

// Ease maps linear progress t in [0, 1] to eased progress.
type Ease func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// QuadIn accelerates from zero velocity (Power1.easeIn).
func QuadIn(t float64) float64 { return t * t }

// QuadOut decelerates to zero velocity (Power1.easeOut).
func QuadOut(t float64) float64 { return t * (2 - t) }

// QuadInOut accelerates until halfway, then decelerates.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Default is used when a Tween has no Ease set.
var Default Ease = QuadOut
