package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/dyeflow/internal/field"
)

func TestPeakSpeed(t *testing.T) {
	m := NewPeakSpeed()

	vel := field.New(2, 2, 2)
	vel.Set(1, 0, 0, 3.0)
	vel.Set(1, 0, 1, 4.0)

	m.Observe(nil, vel, 0)
	if math.Abs(m.Value()-5.0) > 1e-12 {
		t.Errorf("expected peak speed 5, got %f", m.Value())
	}

	// A slower field later must not lower the peak.
	slow := field.New(2, 2, 2)
	m.Observe(nil, slow, 1)
	if m.Value() != 5.0 {
		t.Errorf("peak should be monotone, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestDyeDrift(t *testing.T) {
	base := field.New(2, 2, 3)
	m := NewDyeDrift(base)

	dye := base.Clone()
	m.Observe(dye, nil, 0)
	if m.Value() != 0 {
		t.Errorf("identical fields should have zero drift, got %f", m.Value())
	}

	for i := range dye.Data {
		dye.Data[i] = 2.0
	}
	m.Observe(dye, nil, 1)
	if math.Abs(m.Value()-2.0) > 1e-12 {
		t.Errorf("expected drift 2, got %f", m.Value())
	}
}

func TestDyeDriftShapeMismatch(t *testing.T) {
	base := field.New(2, 2, 3)
	m := NewDyeDrift(base)
	m.Observe(field.New(4, 4, 3), nil, 0)
	if m.Value() != 0 {
		t.Errorf("mismatched shapes should leave drift untouched, got %f", m.Value())
	}
}
