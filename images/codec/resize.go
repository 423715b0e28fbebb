package codec

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/images"
)

// ResizeToImage resizes img to width×height with bilinear interpolation,
// returning a Go-native image.Image. An image that already has the requested
// size is returned unchanged.
func ResizeToImage(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(images.ErrInvalidDimensions, "resize to %dx%d", width, height)
	}
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img, nil
	}
	return resize.Resize(uint(width), uint(height), img, resize.Bilinear), nil
}

// ToWorkingRaster converts a decoded image into the square raster the
// pipeline works on, resizing it to size×size first when needed.
//
// Arguments:
//   - img: The decoded source image, any size and colour model.
//   - size: The working edge length, normally images.WorkingSize.
//
// Returns:
//   - *images.Raster: A size×size RGB raster.
//   - error: An error if size is not positive or img is empty.
func ToWorkingRaster(img image.Image, size int) (*images.Raster, error) {
	if img.Bounds().Empty() {
		return nil, errors.Wrap(images.ErrInvalidDimensions, "empty source image")
	}
	resized, err := ResizeToImage(img, size, size)
	if err != nil {
		return nil, err
	}
	return images.RasterFromImage(resized)
}
