//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The cellgen viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Build with `-tags ebiten`, or use ./cmd/ca-run -watch for a text view.")
	os.Exit(2)
}
