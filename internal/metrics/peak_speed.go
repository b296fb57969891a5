package metrics

import (
	"math"

	"github.com/san-kum/dyeflow/internal/field"
)

// PeakSpeed tracks the largest velocity magnitude, in grid cells per step,
// seen over the whole run.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(_, vel *field.Field, _ float64) {
	for i := 0; i+1 < len(vel.Data); i += 2 {
		speed := math.Hypot(vel.Data[i], vel.Data[i+1])
		if speed > p.peak {
			p.peak = speed
		}
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }
