package render

import "strings"

// Text draws a w-wide cell buffer as lines of glyphs. Cell value i uses the
// i-th byte of glyphs; values past the end use '?'.
func Text(cells []uint8, w int, glyphs string) string {
	if w <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(cells) + len(cells)/w)
	for i, c := range cells {
		if int(c) < len(glyphs) {
			b.WriteByte(glyphs[c])
		} else {
			b.WriteByte('?')
		}
		if (i+1)%w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
