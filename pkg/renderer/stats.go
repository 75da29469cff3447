package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	FailedPixels int           // Pixels whose computation faulted and were left black
	Tiles        int           // Number of tiles the image was split into
	Workers      int           // Number of parallel workers
	Duration     time.Duration // Wall-clock render time
}

// Add accumulates the pixel and sample counters of another tile
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.FailedPixels += other.FailedPixels
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
