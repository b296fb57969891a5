package field

import "math"

// Field is a dense row-major grid of float64 samples with a fixed number of
// channels per cell. One channel holds a scalar potential, two a velocity
// field, three a color (dye) field.
type Field struct {
	Width    int
	Height   int
	Channels int
	Data     []float64
}

func New(width, height, channels int) *Field {
	return &Field{
		Width:    width,
		Height:   height,
		Channels: channels,
		Data:     make([]float64, width*height*channels),
	}
}

func (f *Field) Clone() *Field {
	c := New(f.Width, f.Height, f.Channels)
	copy(c.Data, f.Data)
	return c
}

// At returns the sample at cell (x, y), channel c. Indices must be in range.
func (f *Field) At(x, y, c int) float64 {
	return f.Data[(y*f.Width+x)*f.Channels+c]
}

func (f *Field) Set(x, y, c int, v float64) {
	f.Data[(y*f.Width+x)*f.Channels+c] = v
}

// SameShape reports whether other has identical dimensions and channel count.
func (f *Field) SameShape(other *Field) bool {
	return f.Width == other.Width && f.Height == other.Height && f.Channels == other.Channels
}

func (f *Field) IsValid() bool {
	for _, v := range f.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
