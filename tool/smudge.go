package tool

import "github.com/gogpu/paintkit"

// SmudgeSize is the side length of the smudge sample grid, centered on the tool.
const SmudgeSize = 7

const (
	smudgeRadius = SmudgeSize / 2

	// imageKeep is the share of its own color a pixel keeps on each exchange;
	// the sample grid keeps the same share of its paint.
	imageKeep = 0.7
	mixIn     = 1 - imageKeep
)

// SmudgeGrid is the paint held by the smudge tool: a 7x7 grid of real-valued
// color samples that trade color with the image as the tool is dragged,
// like wet paint.
//
// Cell (i, j) corresponds to the pixel at offset (i-3, j-3) from the tool
// position. Cells sampled off the canvas carry no paint; they never take
// part in an exchange until the next Grab.
//
// The zero value holds no paint, so Exchange before Grab does nothing.
type SmudgeGrid struct {
	red, green, blue [SmudgeSize][SmudgeSize]float64
	onCanvas         [SmudgeSize][SmudgeSize]bool
}

// Grab loads the grid from the 7x7 block of r centered at (x, y).
// It is called when a smudge gesture starts.
func (s *SmudgeGrid) Grab(r *paintkit.Raster, x, y int) {
	for i := range SmudgeSize {
		for j := range SmudgeSize {
			px, py := x+i-smudgeRadius, y+j-smudgeRadius
			if !r.In(px, py) {
				s.onCanvas[i][j] = false
				continue
			}
			c := r.RGBAt(px, py)
			s.red[i][j] = float64(c.R)
			s.green[i][j] = float64(c.G)
			s.blue[i][j] = float64(c.B)
			s.onCanvas[i][j] = true
		}
	}
}

// Exchange mixes the grid with the 7x7 block of r centered at (x, y).
//
// For every cell holding paint whose pixel is on the canvas, the pixel
// becomes 0.7*pixel + 0.3*sample, truncated, and the sample becomes
// 0.3*pixel + 0.7*sample. Both are computed from the values before the
// exchange, so repeated exchanges at one spot converge both sides to a
// shared color.
func (s *SmudgeGrid) Exchange(r *paintkit.Raster, x, y int) {
	for i := range SmudgeSize {
		px := x + i - smudgeRadius
		for j := range SmudgeSize {
			py := y + j - smudgeRadius
			if !s.onCanvas[i][j] || !r.In(px, py) {
				continue
			}
			cur := r.RGBAt(px, py)
			cr, cg, cb := float64(cur.R), float64(cur.G), float64(cur.B)
			sr, sg, sb := s.red[i][j], s.green[i][j], s.blue[i][j]

			r.SetRGB(px, py, paintkit.RGB{
				R: uint8(cr*imageKeep + sr*mixIn),
				G: uint8(cg*imageKeep + sg*mixIn),
				B: uint8(cb*imageKeep + sb*mixIn),
			})
			s.red[i][j] = cr*mixIn + sr*imageKeep
			s.green[i][j] = cg*mixIn + sg*imageKeep
			s.blue[i][j] = cb*mixIn + sb*imageKeep
		}
	}
}

// Sample returns the paint held in cell (i, j).
// ok is false for cells sampled off the canvas or outside the grid.
func (s *SmudgeGrid) Sample(i, j int) (r, g, b float64, ok bool) {
	if i < 0 || i >= SmudgeSize || j < 0 || j >= SmudgeSize || !s.onCanvas[i][j] {
		return 0, 0, 0, false
	}
	return s.red[i][j], s.green[i][j], s.blue[i][j], true
}

// Reset discards the held paint, as at the end of a gesture.
func (s *SmudgeGrid) Reset() {
	*s = SmudgeGrid{}
}
