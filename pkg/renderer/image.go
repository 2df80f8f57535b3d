package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
)

// Image is a width x height grid of linear float colors stored row-major
// with row 0 at the top of the displayed picture
type Image struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImage creates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// index maps view plane coordinates (y=0 at the bottom) to storage
func (img *Image) index(x, y int) int {
	return (img.height-1-y)*img.width + x
}

// SetPixelColor stores the color for pixel (x, y) where y=0 is the bottom
// row of the view plane
func (img *Image) SetPixelColor(x, y int, c core.Vec3) {
	img.pixels[img.index(x, y)] = c
}

// GetPixelColor returns the color for pixel (x, y) where y=0 is the bottom
// row of the view plane
func (img *Image) GetPixelColor(x, y int) core.Vec3 {
	return img.pixels[img.index(x, y)]
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image using display coordinates (row 0 at the top)
func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return color.RGBA{}
	}
	return vec3ToColor(img.pixels[y*img.width+x])
}

// ToRGBA converts the image to an 8-bit RGBA image
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			rgba.SetRGBA(x, y, vec3ToColor(img.pixels[y*img.width+x]))
		}
	}
	return rgba
}

// vec3ToColor converts an already gamma corrected color to RGBA
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
