//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one offscreen image the size of the grid and redraws it
// from cell data every frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h grid.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h)}
}

// Blit colors cells through palette and draws them onto dst scaled by scale.
// Cells of the wrong length are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	Fill(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
