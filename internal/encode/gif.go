// Package encode turns rendered frame sequences into image artifacts.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/dyeflow/internal/sim"
)

// ErrNoFrames indicates an encode was requested before any frame arrived.
var ErrNoFrames = errors.New("encode: no frames to write")

// Animator is a frame sink that accumulates the whole sequence in memory
// and writes a single animation artifact at the end of the run.
type Animator interface {
	sim.FrameSink
	Frames() int
	WriteFile(path string) error
}

// ForPath picks an animator from the artifact's file extension: .png gets
// an APNG, everything else an animated GIF.
func ForPath(path string, n int) Animator {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return NewAPNG(n)
	}
	return NewGIF(n)
}

// GIF collects frames as paletted images and encodes an animated GIF.
type GIF struct {
	rect   image.Rectangle
	frames []*image.Paletted
	delays []int
}

func NewGIF(n int) *GIF {
	return &GIF{rect: image.Rect(0, 0, n, n)}
}

func (g *GIF) Accept(pix []uint8, delay time.Duration) bool {
	img := image.NewPaletted(g.rect, palette.Plan9)
	i := 0
	for y := 0; y < g.rect.Max.Y; y++ {
		for x := 0; x < g.rect.Max.X; x++ {
			c := color.RGBA{pix[i], pix[i+1], pix[i+2], 255}
			img.SetColorIndex(x, y, uint8(img.Palette.Index(c)))
			i += 3
		}
	}
	g.frames = append(g.frames, img)
	g.delays = append(g.delays, centiseconds(delay))
	return true
}

func (g *GIF) Frames() int { return len(g.frames) }

func (g *GIF) WriteFile(path string) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	anim := &gif.GIF{Image: g.frames, Delay: g.delays, LoopCount: 0}
	if err := gif.EncodeAll(file, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// centiseconds converts a frame delay to GIF timing units of 10ms, with a
// floor of one unit so high frame rates never encode a zero delay.
func centiseconds(d time.Duration) int {
	c := int(d / (10 * time.Millisecond))
	if c < 1 {
		c = 1
	}
	return c
}

// rgbaFrame copies an interleaved RGB buffer into a freshly allocated RGBA
// image of the given square size.
func rgbaFrame(pix []uint8, n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	si, di := 0, 0
	for p := 0; p < n*n; p++ {
		img.Pix[di] = pix[si]
		img.Pix[di+1] = pix[si+1]
		img.Pix[di+2] = pix[si+2]
		img.Pix[di+3] = 255
		si += 3
		di += 4
	}
	return img
}
