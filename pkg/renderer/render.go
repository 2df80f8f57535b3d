package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for a render
type RenderConfig struct {
	NumWorkers int     // Number of parallel workers (0 = logical CPU count)
	Gamma      float64 // Display gamma (0 = DisplayGamma)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: DefaultNumWorkers(),
		Gamma:      DisplayGamma,
	}
}

// Render traces one primary ray through the center of every pixel using a
// pool of workers and merges their results into a single image
func Render(scene Scene, config RenderConfig, logger core.Logger) (*Image, RenderStats, error) {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	if scene == nil {
		return nil, RenderStats{}, fmt.Errorf("render: scene is nil")
	}
	if scene.GetCamera() == nil {
		return nil, RenderStats{}, fmt.Errorf("render: scene has no camera")
	}

	width, height := scene.GetImageSize()
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("render: invalid image size %dx%d", width, height)
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers()
	}
	gamma := config.Gamma
	if gamma <= 0 {
		gamma = DisplayGamma
	}

	start := time.Now()
	logger.Printf("Rendering %dx%d with %d workers\n", width, height, numWorkers)

	pool := NewWorkerPool(scene, width, height, numWorkers, gamma, logger)
	pool.Start()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pool.SubmitTask(PixelTask{X: x, Y: y})
		}
	}
	pool.Stop()

	img, stats := mergeResults(pool.Results(), width, height)
	stats.NumWorkers = numWorkers
	stats.Elapsed = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(img)

	if stats.FailedPixels > 0 {
		logger.Printf("Render finished with %d failed pixels\n", stats.FailedPixels)
	}
	logger.Printf("Render completed in %v (average luminance %.4f)\n", stats.Elapsed, stats.AverageLuminance)

	return img, stats, nil
}

// mergeResults copies every worker's results into a new image
func mergeResults(results [][]PixelResult, width, height int) (*Image, RenderStats) {
	img := NewImage(width, height)
	stats := RenderStats{PixelsPerWorker: make([]int, len(results))}

	for i, workerResults := range results {
		stats.PixelsPerWorker[i] = len(workerResults)
		for _, result := range workerResults {
			if result.Error != nil {
				stats.FailedPixels++
			}
			img.SetPixelColor(result.X, result.Y, result.Color)
			stats.TotalPixels++
		}
	}

	return img, stats
}
