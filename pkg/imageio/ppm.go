package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePPM writes img as a plain-text (P3) PPM. The top row of the picture comes
// first, so the bottom-up rows of img are written in reverse.
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for y := img.Height - 1; y >= 0; y-- {
		for _, p := range img.Pixels[y] {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
