package core

import (
	"math/rand/v2"
	"strings"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Grid returns h newline-separated rows of w characters drawn uniformly from
// alphabet. The result is valid input for the text grid parsers.
func (r *RNG) Grid(w, h int, alphabet string) string {
	if w <= 0 || h <= 0 || alphabet == "" {
		return ""
	}
	var b strings.Builder
	b.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.WriteByte(alphabet[r.r.IntN(len(alphabet))])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
