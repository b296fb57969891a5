package metrics

import (
	"math"

	"github.com/san-kum/dyeflow/internal/field"
)

// DyeDrift measures how far the dye has moved from its initial state: the
// mean absolute per-channel deviation from the base field at the most recent
// step. A value near zero means the restoring blend dominates; large values
// mean the flow is stirring hard.
type DyeDrift struct {
	base *field.Field
	last float64
}

func NewDyeDrift(base *field.Field) *DyeDrift { return &DyeDrift{base: base} }

func (d *DyeDrift) Name() string { return "dye_drift" }

func (d *DyeDrift) Observe(dye, _ *field.Field, _ float64) {
	if !dye.SameShape(d.base) {
		return
	}
	sum := 0.0
	for i, v := range dye.Data {
		sum += math.Abs(v - d.base.Data[i])
	}
	d.last = sum / float64(len(dye.Data))
}

func (d *DyeDrift) Value() float64 { return d.last }
func (d *DyeDrift) Reset()         { d.last = 0 }
