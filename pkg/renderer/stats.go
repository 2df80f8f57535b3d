package renderer

import (
	"image"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	NumWorkers       int           // Number of workers in the pool
	PixelsPerWorker  []int         // Pixels handled by each worker
	FailedPixels     int           // Pixels whose shading panicked
	Elapsed          time.Duration // Wall time of the render
	AverageLuminance float64       // Mean Rec. 709 luminance of the output
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an
// image with channels normalized to [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			c := core.NewVec3(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
			total += c.Luminance()
		}
	}

	return total / float64(pixels)
}
