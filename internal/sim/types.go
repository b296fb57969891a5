package sim

import (
	"time"

	"github.com/san-kum/dyeflow/internal/field"
)

// Config carries the per-run simulation parameters. Zero or out-of-range
// values are normalized by New.
type Config struct {
	Resolution int
	Steps      int
	Dt         float64
	Strength   float64
	Fps        int
	Seed       int64
	Palette    string
}

// FrameSink consumes rendered frames. Accept is handed the next interleaved
// RGB pixel buffer (3·N² bytes, row-major) together with the target display
// duration, and returns false to request an early stop. The buffer is reused
// between frames; implementations must copy anything they retain.
type FrameSink interface {
	Accept(pix []uint8, delay time.Duration) bool
}

// Metric observes the dye and velocity fields once per step and reduces
// them to a single value reported after the run.
type Metric interface {
	Name() string
	Observe(dye, vel *field.Field, t float64)
	Value() float64
	Reset()
}

// Tee fans a frame out to several sinks. It reports stop as soon as any
// sink requests one.
func Tee(sinks ...FrameSink) FrameSink { return teeSink(sinks) }

type teeSink []FrameSink

func (s teeSink) Accept(pix []uint8, delay time.Duration) bool {
	ok := true
	for _, sink := range s {
		if !sink.Accept(pix, delay) {
			ok = false
		}
	}
	return ok
}
