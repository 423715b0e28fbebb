package codec

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/nvr-ai/go-vision/images"
)

// DefaultQuality is the JPEG and WebP quality used when none is configured.
const DefaultQuality = 95

// Encode writes img to w in the given format. quality applies to JPEG and
// lossy WebP; values outside 1..100 fall back to DefaultQuality.
func Encode(w io.Writer, img image.Image, format images.ImageFormat, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	var err error
	switch format {
	case images.FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case images.FormatPNG:
		err = png.Encode(w, img)
	case images.FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	case images.FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return errors.Errorf("unsupported image format: %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", format)
	}
	return nil
}

// SaveImage encodes img to path, choosing the format from the extension.
// Parent directories are created as needed.
func SaveImage(path string, img image.Image, quality int) (err error) {
	format, err := images.FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	return Encode(f, img, format, quality)
}

// SavePlane writes a plane as a grayscale image.
func SavePlane(path string, p *images.Plane, quality int) error {
	return SaveImage(path, p.Gray(), quality)
}

// SaveRaster writes a raster as an opaque colour image.
func SaveRaster(path string, r *images.Raster, quality int) error {
	return SaveImage(path, r.RGBA(), quality)
}
