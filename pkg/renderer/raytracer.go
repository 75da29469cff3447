package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Raytracer renders a world through a camera into an Image
type Raytracer struct {
	world      geometry.Hitable
	camera     *Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer. Zero fields of config take their defaults,
// a nil integrator uses a path tracer with the default sky, and a nil logger is silent.
func NewRaytracer(world geometry.Hitable, camera *Camera, config Config, integratorInst integrator.Integrator, logger core.Logger) *Raytracer {
	config = DefaultConfig().Merge(config)
	if integratorInst == nil {
		integratorInst = integrator.NewPathTracer(integrator.Config{MaxDepth: config.MaxDepth}, nil)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Config returns the effective render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Render traces the whole image. Tiles are distributed over the worker pool;
// pixels that fault are black and counted in RenderStats.FailedPixels.
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}
	if rt.world == nil || rt.camera == nil {
		return nil, RenderStats{}, fmt.Errorf("raytracer needs a world and a camera")
	}

	start := time.Now()
	img := NewImage(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize, rt.config.Seed)

	tileRenderer := NewTileRenderer(rt.world, rt.camera, rt.integrator, rt.config, rt.logger)
	pool := NewWorkerPool(tileRenderer, rt.config.NumWorkers, len(tiles))
	pool.Start()

	stats := RenderStats{
		Tiles:   len(tiles),
		Workers: pool.GetNumWorkers(),
	}
	core.Debugf(rt.logger, "rendering %dx%d at %d spp: %d tiles on %d workers",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, stats.Tiles, stats.Workers)

	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Image: img})
	}

	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			renderErr = fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
			break
		}
		stats.Add(result.Stats)
		core.Debugf(rt.logger, "tile %d/%d done", i+1, len(tiles))
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if renderErr != nil {
		return nil, stats, renderErr
	}
	if stats.FailedPixels > 0 {
		core.Warnf(rt.logger, "%d of %d pixels failed and were left black", stats.FailedPixels, stats.TotalPixels)
	}

	return img, stats, nil
}
