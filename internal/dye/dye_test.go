package dye

import "testing"

func TestNewBaseDeterministic(t *testing.T) {
	a := NewBase(16, DefaultSeed, "water")
	b := NewBase(16, DefaultSeed, "water")

	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("same seed produced different dye at %d: %f != %f", i, a.Data[i], b.Data[i])
		}
	}
}

func TestNewBaseSeedChangesField(t *testing.T) {
	a := NewBase(16, 42, "water")
	b := NewBase(16, 43, "water")

	same := true
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical dye")
	}
}

func TestNewBaseInRange(t *testing.T) {
	for _, palette := range Palettes {
		f := NewBase(32, DefaultSeed, palette)
		if f.Width != 32 || f.Height != 32 || f.Channels != 3 {
			t.Fatalf("palette %s: unexpected shape %dx%dx%d", palette, f.Width, f.Height, f.Channels)
		}
		for i, v := range f.Data {
			if v < 0 || v > 255 {
				t.Fatalf("palette %s: sample %d out of range: %f", palette, i, v)
			}
		}
	}
}

func TestVignetteDarkensCorners(t *testing.T) {
	n := 33
	f := NewBase(n, DefaultSeed, "water")

	center := f.At(n/2, n/2, 2)
	corner := f.At(0, 0, 2)
	if corner >= center {
		t.Errorf("expected corner darker than center, got %f >= %f", corner, center)
	}
}
