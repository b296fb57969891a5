package field

import "math"

// Kernel returns the normalized 1D Gaussian weights for sigma. The radius is
// max(1, round(3·sigma)), so the returned slice has 2·radius+1 entries that
// sum to 1. Returns nil for sigma <= 0.
func Kernel(sigma float64) []float64 {
	if sigma <= 0 {
		return nil
	}
	radius := int(math.Round(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		weights[i+radius] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// Smooth applies an isotropic Gaussian blur to f in place as two separable
// 1D passes, horizontal then vertical. Out-of-range samples replicate the
// edge value. tmp is scratch and must match f's shape. sigma <= 0 leaves f
// untouched.
func Smooth(f, tmp *Field, sigma float64) {
	weights := Kernel(sigma)
	if weights == nil {
		return
	}
	radius := len(weights) / 2
	w, h, ch := f.Width, f.Height, f.Channels

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				sum := 0.0
				for k := -radius; k <= radius; k++ {
					sx := clampInt(x+k, 0, w-1)
					sum += weights[k+radius] * f.At(sx, y, c)
				}
				tmp.Set(x, y, c, sum)
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < ch; c++ {
				sum := 0.0
				for k := -radius; k <= radius; k++ {
					sy := clampInt(y+k, 0, h-1)
					sum += weights[k+radius] * tmp.At(x, sy, c)
				}
				f.Set(x, y, c, sum)
			}
		}
	}
}
