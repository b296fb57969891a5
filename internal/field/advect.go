package field

// Bilinear samples f at fractional coordinates (x, y), writing one value per
// channel into out. Coordinates must already lie inside
// [0, width-1]×[0, height-1]; the four enclosing integer-grid samples are
// blended independently per channel.
func (f *Field) Bilinear(x, y float64, out []float64) {
	x0 := int(x)
	y0 := int(y)
	x1 := clampInt(x0+1, 0, f.Width-1)
	y1 := clampInt(y0+1, 0, f.Height-1)
	fx := x - float64(x0)
	fy := y - float64(y0)

	for c := 0; c < f.Channels; c++ {
		top := f.At(x0, y0, c)*(1-fx) + f.At(x1, y0, c)*fx
		bottom := f.At(x0, y1, c)*(1-fx) + f.At(x1, y1, c)*fx
		out[c] = top*(1-fy) + bottom*fy
	}
}

// Advect transports src backward through vel by one step of length dt,
// writing the result to dst. For every destination cell the traced source
// position (x - dt·vx, y - dt·vy) is clamped to the grid, so material
// advecting in from outside samples the boundary rather than wrapping. dst
// and src must have identical shapes; vel carries two channels on the same
// grid.
func Advect(dst, src, vel *Field, dt float64) {
	w, h := src.Width, src.Height
	maxX := float64(w - 1)
	maxY := float64(h - 1)
	sample := make([]float64, src.Channels)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			vi := (y*w + x) * 2
			bx := clampFloat(float64(x)-dt*vel.Data[vi], 0, maxX)
			by := clampFloat(float64(y)-dt*vel.Data[vi+1], 0, maxY)
			src.Bilinear(bx, by, sample)
			di := (y*w + x) * src.Channels
			copy(dst.Data[di:di+src.Channels], sample)
		}
	}
}
