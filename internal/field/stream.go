package field

import "math"

// Stream evaluates the time-varying stream function at normalized
// coordinates (x, y) in [0, 1). The curl of the resulting potential surface
// yields a divergence-free velocity field: a low-frequency standing pattern,
// a counter-rotating swirl layer, and a diagonal ripple.
func Stream(x, y, t float64) float64 {
	base := math.Sin(2*math.Pi*(3*x+0.7*t)) * math.Sin(2*math.Pi*(3*y-0.5*t))
	swirl := math.Cos(2*math.Pi*(2*x-0.3*t)) * math.Cos(2*math.Pi*(2*y+0.4*t))
	ripple := math.Sin(2 * math.Pi * (4*x + y + 0.2*t))
	return base + 0.6*swirl + 0.25*ripple
}

// Synthesizer derives per-frame velocity fields on an n×n grid from the
// stream function. The potential buffer is scratch, fully overwritten on
// every call.
type Synthesizer struct {
	n   int
	psi *Field
}

func NewSynthesizer(n int) *Synthesizer {
	if n < 2 {
		n = 2
	}
	return &Synthesizer{n: n, psi: New(n, n, 1)}
}

func (s *Synthesizer) GridSize() int { return s.n }

// Velocity fills dst (an n×n 2-channel field) with the velocity at time t.
// The potential gradient is taken with central differences using clamped
// neighbor indices at the border, then rotated a quarter turn
// (vx = dψ/dy, vy = -dψ/dx) so the field has zero divergence by
// construction. The gradient is scaled by strength·n·0.5 to express the
// result in grid cells per step.
func (s *Synthesizer) Velocity(dst *Field, t, strength float64) {
	n := s.n
	inv := 1.0 / float64(n)
	for y := 0; y < n; y++ {
		fy := float64(y) * inv
		for x := 0; x < n; x++ {
			s.psi.Data[y*n+x] = Stream(float64(x)*inv, fy, t)
		}
	}

	scale := strength * float64(n) * 0.5
	for y := 0; y < n; y++ {
		yp := clampInt(y+1, 0, n-1)
		ym := clampInt(y-1, 0, n-1)
		for x := 0; x < n; x++ {
			xp := clampInt(x+1, 0, n-1)
			xm := clampInt(x-1, 0, n-1)
			dpdx := s.psi.Data[y*n+xp] - s.psi.Data[y*n+xm]
			dpdy := s.psi.Data[yp*n+x] - s.psi.Data[ym*n+x]
			i := (y*n + x) * 2
			dst.Data[i] = dpdy * scale
			dst.Data[i+1] = -dpdx * scale
		}
	}
}
