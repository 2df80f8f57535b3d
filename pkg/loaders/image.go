package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-raycaster/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// SupportedFormats lists the output formats SaveImage understands
var SupportedFormats = []string{"png", "bmp", "tiff"}

// FormatExtension returns the file extension for an output format name
func FormatExtension(format string) (string, error) {
	switch strings.ToLower(format) {
	case "png":
		return ".png", nil
	case "bmp":
		return ".bmp", nil
	case "tif", "tiff":
		return ".tiff", nil
	}
	return "", fmt.Errorf("unsupported image format %q (supported: %v)", format, SupportedFormats)
}

// EncodeImage writes img to w in the named output format
func EncodeImage(w io.Writer, format string, img image.Image) error {
	ext, err := FormatExtension(format)
	if err != nil {
		return err
	}
	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
}

// ContentType returns the MIME type for an output format name
func ContentType(format string) string {
	ext, err := FormatExtension(format)
	if err != nil {
		return "application/octet-stream"
	}
	return "image/" + strings.TrimPrefix(ext, ".")
}

// SaveImage encodes img into path, choosing PNG, BMP or TIFF from the
// file extension
func SaveImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	format := strings.TrimPrefix(ext, ".")
	if _, err := FormatExtension(format); err != nil || ext == "" {
		return fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := EncodeImage(file, format, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// LoadImage loads a PNG, JPEG, BMP or TIFF image and converts it to Vec3
// color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return NewImageData(img), nil
}

// NewImageData converts any image to a Vec3 color array
func NewImageData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// ImageDiff summarizes the per-channel difference between two images
type ImageDiff struct {
	MaxDiff  float64 // Largest absolute channel difference
	MeanDiff float64 // Mean absolute channel difference
}

// CompareImages computes the per-channel difference between two images of
// the same size
func CompareImages(a, b *ImageData) (ImageDiff, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return ImageDiff{}, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	if len(a.Pixels) == 0 {
		return ImageDiff{}, nil
	}

	var diff ImageDiff
	total := 0.0
	for i := range a.Pixels {
		d := a.Pixels[i].Subtract(b.Pixels[i])
		for _, c := range []float64{math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)} {
			total += c
			diff.MaxDiff = math.Max(diff.MaxDiff, c)
		}
	}
	diff.MeanDiff = total / float64(3*len(a.Pixels))

	return diff, nil
}
