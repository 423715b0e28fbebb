package images

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Gray returns the plane as a standard library grayscale image, so it can be
// handed to encoders and viewers.
func (p *Plane) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+p.Width], p.Pix[y*p.Width:(y+1)*p.Width])
	}
	return img
}

// RGBA returns the raster as an opaque standard library image.
func (r *Raster) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			i := r.PixOffset(x, y)
			o := img.PixOffset(x, y)
			img.Pix[o] = r.Pix[i]
			img.Pix[o+1] = r.Pix[i+1]
			img.Pix[o+2] = r.Pix[i+2]
			img.Pix[o+3] = 0xff
		}
	}
	return img
}

// RasterFromImage copies img into a new raster of the same size. Alpha is
// dropped; colours are taken as their non-premultiplied 8-bit values.
//
// Arguments:
//   - img: The source image, any colour model.
//
// Returns:
//   - *Raster: A raster with img's width and height.
//   - error: ErrInvalidDimensions if img is empty.
func RasterFromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	r, err := NewRaster(b.Dx(), b.Dy())
	if err != nil {
		return nil, errors.Wrap(err, "converting image")
	}

	// Fast path for the layouts the decoders hand back most often.
	switch src := img.(type) {
	case *image.RGBA:
		Parallel(r.Height, func(start, end int) {
			for y := start; y < end; y++ {
				for x := 0; x < r.Width; x++ {
					o := src.PixOffset(b.Min.X+x, b.Min.Y+y)
					c := color.NRGBAModel.Convert(color.RGBA{src.Pix[o], src.Pix[o+1], src.Pix[o+2], src.Pix[o+3]}).(color.NRGBA)
					r.SetRGB(x, y, c.R, c.G, c.B)
				}
			}
		})
		return r, nil
	case *image.Gray:
		Parallel(r.Height, func(start, end int) {
			for y := start; y < end; y++ {
				for x := 0; x < r.Width; x++ {
					v := src.Pix[src.PixOffset(b.Min.X+x, b.Min.Y+y)]
					r.SetRGB(x, y, v, v, v)
				}
			}
		})
		return r, nil
	}

	Parallel(r.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < r.Width; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				r.SetRGB(x, y, c.R, c.G, c.B)
			}
		}
	})
	return r, nil
}
