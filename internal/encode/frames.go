package encode

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// FrameDump streams each frame to its own numbered PNG instead of holding
// the sequence in memory. The first write failure stops the run; the error
// is reported by Err.
type FrameDump struct {
	dir   string
	n     int
	count int
	err   error
}

func NewFrameDump(dir string, n int) (*FrameDump, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &FrameDump{dir: dir, n: n}, nil
}

func (d *FrameDump) Accept(pix []uint8, _ time.Duration) bool {
	if d.err != nil {
		return false
	}
	path := filepath.Join(d.dir, fmt.Sprintf("frame_%04d.png", d.count))
	file, err := os.Create(path)
	if err != nil {
		d.err = fmt.Errorf("create %s: %w", path, err)
		return false
	}
	defer file.Close()

	if err := png.Encode(file, rgbaFrame(pix, d.n)); err != nil {
		d.err = fmt.Errorf("encode %s: %w", path, err)
		return false
	}
	d.count++
	return true
}

func (d *FrameDump) Count() int { return d.count }
func (d *FrameDump) Err() error { return d.err }
