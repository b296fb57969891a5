// Package gui shows the simulation in a native window while it renders.
package gui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is a frame sink backed by a raylib texture. Accept blits each
// frame and paces playback to the configured frame rate; closing the window
// or pressing escape requests an early stop.
type Window struct {
	n   int
	tex rl.Texture2D
	buf []color.RGBA
}

func Open(n, fps int, title string) *Window {
	rl.InitWindow(int32(n), int32(n), title)
	rl.SetTargetFPS(int32(fps))

	img := rl.GenImageColor(n, n, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &Window{
		n:   n,
		tex: tex,
		buf: make([]color.RGBA, n*n),
	}
}

func (w *Window) Accept(pix []uint8, _ time.Duration) bool {
	if rl.WindowShouldClose() {
		return false
	}

	si := 0
	for i := range w.buf {
		w.buf[i] = color.RGBA{R: pix[si], G: pix[si+1], B: pix[si+2], A: 255}
		si += 3
	}
	rl.UpdateTexture(w.tex, w.buf)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(w.tex, 0, 0, rl.White)
	rl.EndDrawing()
	return true
}

func (w *Window) Close() {
	rl.UnloadTexture(w.tex)
	rl.CloseWindow()
}
