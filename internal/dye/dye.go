// Package dye builds the initial color field the flow transports.
package dye

import (
	"math"
	"math/rand"

	"github.com/crazy3lf/colorconv"

	"github.com/san-kum/dyeflow/internal/field"
)

const (
	// DefaultSeed keeps the stock animation reproducible across runs.
	DefaultSeed = 42

	turbulenceSigma = 20.0
)

// Palettes maps palette names to their base color synthesis.
var Palettes = []string{"water", "ember", "spectrum"}

// NewBase creates the n×n base dye field: a palette base color, additive
// Gaussian turbulence from a seeded source, and a radial vignette, clamped
// to [0, 255]. The same seed always produces the same field.
func NewBase(n int, seed int64, palette string) *field.Field {
	f := field.New(n, n, 3)
	fillPalette(f, palette)

	rng := rand.New(rand.NewSource(seed))
	for i := range f.Data {
		f.Data[i] += rng.NormFloat64() * turbulenceSigma
	}

	applyVignette(f)

	for i, v := range f.Data {
		if v < 0 {
			f.Data[i] = 0
		} else if v > 255 {
			f.Data[i] = 255
		}
	}
	return f
}

func fillPalette(f *field.Field, palette string) {
	n := f.Width
	switch palette {
	case "ember":
		fillUniform(f, 200, 80, 30)
	case "spectrum":
		// Hue sweeps diagonally across the grid.
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				hue := math.Mod(float64(x+y)/float64(2*n)*360.0, 360.0)
				r, g, b, _ := colorconv.HSVToRGB(hue, 0.6, 0.85)
				f.Set(x, y, 0, float64(r))
				f.Set(x, y, 1, float64(g))
				f.Set(x, y, 2, float64(b))
			}
		}
	default: // "water"
		fillUniform(f, 30, 90, 180)
	}
}

func fillUniform(f *field.Field, r, g, b float64) {
	for i := 0; i < len(f.Data); i += 3 {
		f.Data[i] = r
		f.Data[i+1] = g
		f.Data[i+2] = b
	}
}

// applyVignette darkens toward the corners: scale = clip(1 - 0.8·r, 0.2, 1)
// where r is the distance from the grid center in [-1, 1] coordinates.
func applyVignette(f *field.Field) {
	n := f.Width
	for y := 0; y < n; y++ {
		v := centered(y, n)
		for x := 0; x < n; x++ {
			u := centered(x, n)
			scale := 1.0 - 0.8*math.Hypot(u, v)
			if scale < 0.2 {
				scale = 0.2
			} else if scale > 1.0 {
				scale = 1.0
			}
			i := (y*n + x) * 3
			f.Data[i] *= scale
			f.Data[i+1] *= scale
			f.Data[i+2] *= scale
		}
	}
}

// centered maps index i on an n-point axis to [-1, 1].
func centered(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return -1.0 + 2.0*float64(i)/float64(n-1)
}
