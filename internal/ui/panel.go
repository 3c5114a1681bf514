//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"cellgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 18
	lineSpacing    = 16
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// Panel renders the status column to the right of the simulation view.
type Panel struct {
	sim   core.Sim
	width int
	title string
	lines []string

	image      *ebiten.Image
	lastHeight int
}

// NewPanel constructs a Panel for sim. A non-positive width disables it.
func NewPanel(sim core.Sim, width int) *Panel {
	if width < 0 {
		width = 0
	}
	return &Panel{sim: sim, width: width, title: Title(sim)}
}

// Width returns the horizontal space the panel occupies.
func (p *Panel) Width() int {
	if p == nil {
		return 0
	}
	return p.width
}

// Update refreshes the cached rows from the simulation.
func (p *Panel) Update() {
	if p == nil || p.width <= 0 {
		return
	}
	p.lines = Lines(p.sim)
}

// Draw paints the panel at offsetX with the given height.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, height int) {
	if p == nil || p.width <= 0 || height <= 0 {
		return
	}
	if p.image == nil || p.lastHeight != height {
		p.image = ebiten.NewImage(p.width, height)
		p.lastHeight = height
	}
	p.image.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(p.image, p.title, face, panelPadding, y, headerColor)
	for _, line := range p.lines {
		y += lineSpacing
		if y > height {
			break
		}
		c := valueColor
		if strings.HasPrefix(line, "[") || strings.HasPrefix(line, "    ") {
			c = groupColor
		}
		text.Draw(p.image, line, face, panelPadding, y, c)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.image, op)
}
