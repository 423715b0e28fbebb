package kernels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-vision/images"
)

// plane builds a plane from literal rows and fails the test on malformed input.
func plane(t testing.TB, rows ...[]uint8) *images.Plane {
	t.Helper()
	p, err := images.PlaneFromRows(rows)
	require.NoError(t, err)
	return p
}

// rasterFromPlanes interleaves three equally sized planes into a raster.
func rasterFromPlanes(t testing.TB, r, g, b *images.Plane) *images.Raster {
	t.Helper()
	out, err := images.NewRaster(r.Width, r.Height)
	require.NoError(t, err)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out.SetRGB(x, y, r.At(x, y), g.At(x, y), b.At(x, y))
		}
	}
	return out
}

// gradientRaster returns a raster whose samples vary with position so that
// every channel differs from the others.
func gradientRaster(t testing.TB, width, height int) *images.Raster {
	t.Helper()
	r, err := images.NewRaster(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.SetRGB(x, y, uint8(x*7+y), uint8(x+y*3), uint8((x^y)*5))
		}
	}
	return r
}
