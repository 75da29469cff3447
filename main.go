package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// stdoutTarget sends a PPM image to standard output
const stdoutTarget = "-"

// options holds the parsed command line
type options struct {
	sceneName string
	meshPath  string
	output    string
	logLevel  string
	help      bool
	render    renderer.Config
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene to render (see -help for the list)")
	fs.StringVar(&opts.meshPath, "mesh", "", "OBJ or PLY file for the mesh scene (.gz, .zst and .sz are decompressed)")
	fs.IntVar(&opts.render.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.render.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.render.SamplesPerPixel, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.render.MaxDepth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	fs.IntVar(&opts.render.NumWorkers, "workers", 0, "Parallel workers (0 = one per CPU)")
	fs.Int64Var(&opts.render.Seed, "seed", 0, "Random seed for sampling and the random scene (0 = default)")
	fs.StringVar(&opts.output, "out", "", "Output file; extension picks .ppm, .png, .bmp or .tiff, optionally plus .gz, .zst or .sz. '-' writes PPM to stdout")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.help {
		printHelp(stderr, fs)
		return opts, flag.ErrHelp
	}
	return opts, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.List() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.Name, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without -out the render is saved to output/<scene>/render_<timestamp>.png")
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level, err := core.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := core.NewLevelLogger(stderr, level)

	selected, err := scene.ByName(opts.sceneName, scene.Options{
		MeshPath: opts.meshPath,
		Seed:     sceneSeed(opts.render.Seed),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene with %d primitives", selected.Name, selected.GetPrimitiveCount())

	raytracer := selected.NewRaytracer(opts.render, logger)
	config := raytracer.Config()
	logger.Printf("Rendering %dx%d at %d samples per pixel", config.Width, config.Height, config.SamplesPerPixel)

	img, stats, err := raytracer.Render()
	if err != nil {
		return err
	}
	printStats(stderr, stats)

	if opts.output == stdoutTarget {
		return imageio.WritePPM(stdout, img)
	}

	filename := opts.output
	if filename == "" {
		filename = createOutputPath(selected.Name, time.Now())
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := imageio.Save(filename, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s", filename)
	return nil
}

// sceneSeed keeps the random scene stable when no seed is given
func sceneSeed(seed int64) int64 {
	if seed == 0 {
		return renderer.DefaultConfig().Seed
	}
	return seed
}

// createOutputPath returns output/<scene>/render_<timestamp>.png
func createOutputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func printStats(w io.Writer, stats renderer.RenderStats) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Render completed in %v\n", stats.Duration.Round(time.Millisecond))
	p.Fprintf(w, "Pixels: %d, samples: %d (%.1f per pixel)\n", stats.TotalPixels, stats.TotalSamples, stats.AverageSamples())
	p.Fprintf(w, "Throughput: %.0f samples/s on %d workers over %d tiles\n", stats.SamplesPerSecond(), stats.Workers, stats.Tiles)
	if stats.FailedPixels > 0 {
		p.Fprintf(w, "Failed pixels: %d\n", stats.FailedPixels)
	}
}
