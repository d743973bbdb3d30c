package vmath

import "github.com/chewxy/math32"

// Clamp01 limits f to [0, 1].
func Clamp01(f float32) float32 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Factor is the per-frame interpolation factor for a convergence rate (1/s) and a
// frame time dt (s). Clamped so a long frame lands on the target instead of past it.
func Factor(rate, dt float32) float32 {
	return Clamp01(rate * dt)
}

// Approach moves current toward target by Factor(rate, dt) of the remaining gap.
func Approach(current, target, rate, dt float32) float32 {
	return current + (target-current)*Factor(rate, dt)
}

// ApproachVec3 is Approach applied per component with one shared factor.
func ApproachVec3(current, target Vec3, rate, dt float32) Vec3 {
	return current.Lerp(target, Factor(rate, dt))
}

// Oscillate returns amplitude*sin(t*freq + phase).
func Oscillate(t, freq, phase, amplitude float32) float32 {
	return amplitude * math32.Sin(t*freq+phase)
}

// SettleTime is how long Approach at rate needs to close the given fraction of the
// gap (e.g. 0.9) when frames are short compared to 1/rate.
func SettleTime(rate, fraction float32) float32 {
	if rate <= 0 || fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return math32.Inf(1)
	}
	return -math32.Log(1-fraction) / rate
}
