package tool

import "github.com/gogpu/paintkit"

// EraseSize is the side length of the square cleared by the erase tool.
const EraseSize = 10

// EraseAt clears the EraseSize square centered at (x, y) to bg.
// The square is clipped to the raster.
func EraseAt(r *paintkit.Raster, x, y int, bg paintkit.RGB) {
	r.FillRect(x-EraseSize/2, y-EraseSize/2, EraseSize, EraseSize, bg)
}
