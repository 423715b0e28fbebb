package kernels

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-vision/images"
)

// Gradients computes forward differences of a grayscale plane.
//
//	gx(x, y) = gray(x+1, y) - gray(x, y)   for x < W-1, else 0
//	gy(x, y) = gray(x, y+1) - gray(x, y)   for y < H-1, else 0
//
// The last column of gx and the last row of gy are zero: there is no forward
// neighbour and the image is neither wrapped nor mirrored.
func Gradients(gray *images.Plane) (gx, gy *images.GradientPlane) {
	w, h := gray.Width, gray.Height
	gx = &images.GradientPlane{Pix: make([]int16, w*h), Width: w, Height: h}
	gy = &images.GradientPlane{Pix: make([]int16, w*h), Width: w, Height: h}

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			v := int16(gray.Pix[i])
			if x < w-1 {
				gx.Pix[i] = int16(gray.Pix[i+1]) - v
			}
			if y < h-1 {
				gy.Pix[i] = int16(gray.Pix[i+w]) - v
			}
		}
	}
	return gx, gy
}

// Magnitude computes the Euclidean norm sqrt(gx² + gy²) of two gradient
// planes. Squares are taken in int32, so the full [-255, 255] range is safe.
//
// Arguments:
//   - gx: Horizontal differences.
//   - gy: Vertical differences, same size as gx.
//
// Returns:
//   - *images.MagnitudePlane: The magnitude per pixel.
//   - error: images.ErrDimensionMismatch if gx and gy differ in size.
func Magnitude(gx, gy *images.GradientPlane) (*images.MagnitudePlane, error) {
	if gx.Width != gy.Width || gx.Height != gy.Height || len(gx.Pix) != len(gy.Pix) {
		return nil, errors.Wrapf(images.ErrDimensionMismatch, "magnitude: gx %dx%d, gy %dx%d",
			gx.Width, gx.Height, gy.Width, gy.Height)
	}

	out := &images.MagnitudePlane{Pix: make([]float32, len(gx.Pix)), Width: gx.Width, Height: gx.Height}
	for i := range out.Pix {
		dx, dy := int32(gx.Pix[i]), int32(gy.Pix[i])
		out.Pix[i] = math32.Sqrt(float32(dx*dx + dy*dy))
	}
	return out, nil
}

// ThresholdMagnitude marks every pixel whose magnitude is strictly greater
// than threshold as Foreground. A magnitude equal to the threshold is not an
// edge; compare with Binarize, which is inclusive.
func ThresholdMagnitude(gm *images.MagnitudePlane, threshold int) *images.Plane {
	out := &images.Plane{Pix: make([]uint8, len(gm.Pix)), Width: gm.Width, Height: gm.Height}
	t := float64(threshold)
	for i, m := range gm.Pix {
		if float64(m) > t {
			out.Pix[i] = Foreground
		}
	}
	return out
}

// DetectEdges produces a binary edge map of a grayscale plane: forward
// difference gradients, their magnitude, and a strict threshold.
//
// Example:
//
//	edges := DetectEdges(gray, 15)
func DetectEdges(gray *images.Plane, threshold int) *images.Plane {
	gx, gy := Gradients(gray)
	// gx and gy come from the same plane, so they always match.
	gm, _ := Magnitude(gx, gy)
	return ThresholdMagnitude(gm, threshold)
}
