package render

import "image/color"

// Binary returns the palette for two-state sims: 0 draws off, anything else
// draws on.
func Binary(on, off color.Color) []color.RGBA {
	return []color.RGBA{rgba(off), rgba(on)}
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Fill writes one RGBA pixel per cell into buf. A cell value indexes palette,
// clamped to its last entry. An empty palette leaves every pixel transparent.
func Fill(buf []byte, cells []uint8, palette []color.RGBA) {
	px := buf[:len(cells)*4]
	if len(palette) == 0 {
		clear(px)
		return
	}
	top := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), top)]
		p := px[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
	}
}
