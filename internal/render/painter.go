//go:build ebiten

package render

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter rasterizes a grid into a single RGBA image, one square per live
// cell.
type GridPainter struct {
	layout  Layout
	size    core.Size
	img     *ebiten.Image
	buf     []byte
	on, off color.Color
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, layout Layout, on, off color.Color) *GridPainter {
	pw, ph := layout.Bounds(size)
	return &GridPainter{
		layout: layout,
		size:   size,
		img:    ebiten.NewImage(pw, ph),
		buf:    make([]byte, 4*pw*ph),
		on:     on,
		off:    off,
	}
}

// Refresh rebuilds the image from v. Call it after the grid changes.
func (gp *GridPainter) Refresh(v core.View) {
	if v.Size() != gp.size {
		return
	}
	fillCellsRGBA(gp.buf, v, gp.layout, gp.on, gp.off)
	gp.img.WritePixels(gp.buf)
}

// Draw copies the last refreshed image onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	dst.DrawImage(gp.img, nil)
}

// Bounds returns the pixel dimensions of the painted image.
func (gp *GridPainter) Bounds() (int, int) { return gp.layout.Bounds(gp.size) }
