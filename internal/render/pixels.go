package render

import (
	"image"
	"image/color"

	"torus-life/pkg/core"
)

// Layout places each grid cell as a Cell x Cell square centred in a
// Zone x Zone slot.
type Layout struct {
	Zone int
	Cell int
}

// Gap is the margin between a slot edge and its square.
func (l Layout) Gap() int { return (l.Zone - l.Cell) / 2 }

// Bounds returns the pixel dimensions needed to draw a grid of the given size.
func (l Layout) Bounds(s core.Size) (int, int) { return s.W * l.Zone, s.H * l.Zone }

// CellRect returns the square drawn for grid cell (x, y).
func (l Layout) CellRect(x, y int) image.Rectangle {
	gap := l.Gap()
	origin := image.Pt(x*l.Zone+gap, y*l.Zone+gap)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(l.Cell, l.Cell))}
}

// fillCellsRGBA clears buf to off and paints a square of on for every live
// cell in v. buf must hold 4 bytes per pixel of l.Bounds(v.Size()).
func fillCellsRGBA(buf []byte, v core.View, l Layout, on, off color.Color) {
	size := v.Size()
	pw, _ := l.Bounds(size)
	fillRGBA(buf, off)

	r, g, b, a := on.RGBA()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !v.Get(x, y) {
				continue
			}
			rect := l.CellRect(x, y)
			for py := rect.Min.Y; py < rect.Max.Y; py++ {
				for px := rect.Min.X; px < rect.Max.X; px++ {
					base := (py*pw + px) * 4
					buf[base+0] = uint8(r >> 8)
					buf[base+1] = uint8(g >> 8)
					buf[base+2] = uint8(b >> 8)
					buf[base+3] = uint8(a >> 8)
				}
			}
		}
	}
}

func fillRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
