package encode

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/setanarut/apng"
)

// APNG collects frames as RGBA images and writes an animated PNG. Unlike
// GIF it keeps the full 24-bit color of the dye field.
type APNG struct {
	n      int
	frames []image.Image
	delay  int
}

func NewAPNG(n int) *APNG {
	return &APNG{n: n, delay: 1}
}

func (a *APNG) Accept(pix []uint8, delay time.Duration) bool {
	a.frames = append(a.frames, rgbaFrame(pix, a.n))
	a.delay = centiseconds(delay)
	return true
}

func (a *APNG) Frames() int { return len(a.frames) }

func (a *APNG) WriteFile(path string) error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := apng.Save(path, a.frames, uint16(a.delay)); err != nil {
		return fmt.Errorf("encode apng: %w", err)
	}
	return nil
}
