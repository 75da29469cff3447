package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It holds no per-tile state, so one instance is shared by every worker.
type TileRenderer struct {
	world      geometry.Hitable
	camera     *Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(world geometry.Hitable, camera *Camera, integratorInst integrator.Integrator, config Config, logger core.Logger) *TileRenderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// RenderTile renders every pixel within the tile bounds into img.
// The tile's generator drives all sampling so the result depends only on the tile.
func (tr *TileRenderer) RenderTile(tile *Tile, img *Image) RenderStats {
	sampler := core.NewRandomSampler(tile.Random)
	bounds := tile.Bounds
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel, samples, err := tr.renderPixel(x, y, sampler)
			stats.TotalSamples += samples
			if err != nil {
				stats.FailedPixels++
				core.Warnf(tr.logger, "tile %d: pixel (%d,%d) failed: %v", tile.ID, x, y, err)
			}
			img.Pixels[y][x] = pixel
		}
	}

	return stats
}

// renderPixel averages SamplesPerPixel jittered rays. A panic anywhere below
// is turned into an error and a black pixel.
func (tr *TileRenderer) renderPixel(x, y int, sampler core.Sampler) (pixel Pixel, samples int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pixel = Pixel{}
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	width := float64(tr.config.Width)
	height := float64(tr.config.Height)

	var colorAccum core.Vec3
	for sample := 0; sample < tr.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		s := (float64(x) + jitter.X()) / width
		t := (float64(y) + jitter.Y()) / height

		ray := tr.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.world, sampler))
		samples++
	}

	return toPixel(colorAccum.Mul(1.0 / float64(tr.config.SamplesPerPixel))), samples, nil
}
