//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 6
	overlayLine    = 16
)

// Overlay draws an optional status panel on top of the board. H toggles it.
type Overlay struct {
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the status lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, stats *core.Stats, paused bool) {
	if !o.show || stats == nil {
		return
	}
	lines := []string{
		fmt.Sprintf("gen %d", stats.Generation),
		fmt.Sprintf("live %d (avg %.0f)", stats.Population, stats.AveragePopulation),
		fmt.Sprintf("%.1f gen/s", stats.GenerationsPerSecond),
	}
	if paused {
		lines = append(lines, "paused")
	}

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*overlayPadding), float64(len(lines)*overlayLine+overlayPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 180})
	screen.DrawImage(o.pixel, op)

	for i, l := range lines {
		text.Draw(screen, l, face, overlayPadding, overlayLine*(i+1), color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
