package anim

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float32) float32

// Linear leaves progress untouched.
func Linear(t float32) float32 {
	return clamp01(t)
}

// EaseOut is a cubic deceleration curve.
func EaseOut(t float32) float32 {
	t = clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// FastOutSlowIn is the Material standard curve, cubic-bezier(0.4, 0, 0.2, 1).
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns a CSS-style timing function with control points
// (x1,y1) and (x2,y2). x is inverted with a few Newton steps followed by
// bisection if Newton does not converge.
func CubicBezier(x1, y1, x2, y2 float32) Easing {
	bezier := func(t, p1, p2 float32) float32 {
		inv := 1 - t
		return 3*inv*inv*t*p1 + 3*inv*t*t*p2 + t*t*t
	}
	slope := func(t, p1, p2 float32) float32 {
		inv := 1 - t
		return 3*inv*inv*p1 + 6*inv*t*(p2-p1) + 3*t*t*(1-p2)
	}

	return func(x float32) float32 {
		x = clamp01(x)
		if x == 0 || x == 1 {
			return x
		}

		t := x
		for i := 0; i < 8; i++ {
			dx := bezier(t, x1, x2) - x
			if abs32(dx) < 1e-5 {
				return bezier(t, y1, y2)
			}
			d := slope(t, x1, x2)
			if abs32(d) < 1e-6 {
				break
			}
			t -= dx / d
		}

		lo, hi := float32(0), float32(1)
		t = x
		for i := 0; i < 32; i++ {
			cx := bezier(t, x1, x2)
			if abs32(cx-x) < 1e-5 {
				break
			}
			if cx < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return bezier(t, y1, y2)
	}
}

func clamp01(t float32) float32 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
