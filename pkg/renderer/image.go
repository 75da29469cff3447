package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Pixel is an 8-bit RGB color
type Pixel struct {
	R, G, B uint8
}

// Image is the render output. Pixels[y][x] with row 0 at the bottom of the picture.
type Image struct {
	Width  int
	Height int
	Pixels [][]Pixel
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	pixels := make([][]Pixel, height)
	for y := range pixels {
		pixels[y] = make([]Pixel, width)
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// ToRGBA converts to a top-down opaque RGBA image for the standard encoders
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := img.Pixels[y]
		for x := 0; x < img.Width; x++ {
			p := row[x]
			out.SetRGBA(x, img.Height-1-y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}

// AverageLuminance returns the mean Rec. 709 luminance in [0,1]
func (img *Image) AverageLuminance() float64 {
	if img.Width == 0 || img.Height == 0 {
		return 0
	}
	total := 0.0
	for _, row := range img.Pixels {
		for _, p := range row {
			total += 0.2126*float64(p.R)/255 + 0.7152*float64(p.G)/255 + 0.0722*float64(p.B)/255
		}
	}
	return total / float64(img.Width*img.Height)
}

// toPixel applies gamma 2 (square root), clamps to [0,1] and quantizes.
// NaN components become 0.
func toPixel(c core.Vec3) Pixel {
	for i := range c {
		if math.IsNaN(c[i]) {
			c[i] = 0
		}
	}
	c = core.Clamp(core.Sqrt(c), 0, 1)
	return Pixel{
		R: uint8(255.99 * c.X()),
		G: uint8(255.99 * c.Y()),
		B: uint8(255.99 * c.Z()),
	}
}
