// Package codec moves images in and out of the analysis pipeline: it decodes
// JPEG, PNG, WebP and BMP input, resizes it to the working resolution, and
// encodes result planes for export.
package codec

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/nvr-ai/go-vision/images"
)

// ErrUnknownFormat is returned when the input bytes match no supported format.
var ErrUnknownFormat = errors.New("unknown image format")

// Sniff identifies the format of an encoded image from its leading bytes.
func Sniff(data []byte) (images.ImageFormat, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff:
		return images.FormatJPEG, nil
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return images.FormatPNG, nil
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return images.FormatWebP, nil
	case bytes.HasPrefix(data, []byte("BM")):
		return images.FormatBMP, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Decode decodes an encoded image of any supported format.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - image.Image: The decoded image.
//   - images.ImageFormat: The format detected from the bytes.
//   - error: An error if the data is empty, unrecognised, or corrupt.
func Decode(data []byte) (image.Image, images.ImageFormat, error) {
	if len(data) == 0 {
		return nil, "", errors.New("empty image data")
	}
	format, err := Sniff(data)
	if err != nil {
		return nil, "", err
	}

	var img image.Image
	r := bytes.NewReader(data)
	switch format {
	case images.FormatJPEG:
		img, err = jpeg.Decode(r)
	case images.FormatPNG:
		img, err = png.Decode(r)
	case images.FormatWebP:
		img, err = webp.Decode(r)
	case images.FormatBMP:
		img, err = bmp.Decode(r)
	}
	if err != nil {
		return nil, format, errors.Wrapf(err, "failed to decode %s", format)
	}
	return img, format, nil
}

// LoadRaster reads an image file and returns it as a size×size raster, the
// way the pipeline expects its input.
//
// Arguments:
//   - path: The image file to read.
//   - size: The working edge length, normally images.WorkingSize.
//
// Returns:
//   - *images.Raster: The resized raster.
//   - error: An error if the file cannot be read or decoded.
func LoadRaster(path string, size int) (*images.Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	img, _, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return ToWorkingRaster(img, size)
}
