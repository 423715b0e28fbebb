package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestImage() image.Image {
	// A 100x100 image with a red left half and a blue right half.
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 50 {
				img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 0, G: 0, B: 255, A: 255})
			}
		}
	}
	return img
}

func TestRasterFromImage(t *testing.T) {
	r, err := RasterFromImage(getTestImage())
	require.NoError(t, err)
	assert.Equal(t, 100, r.Width)
	assert.Equal(t, 100, r.Height)

	red, green, blue := r.RGBAt(10, 10)
	assert.Equal(t, []uint8{255, 0, 0}, []uint8{red, green, blue})
	red, green, blue = r.RGBAt(90, 99)
	assert.Equal(t, []uint8{0, 0, 255}, []uint8{red, green, blue})
}

func TestRasterFromImageNonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 7, 9, 12))
	img.SetNRGBA(5, 7, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(8, 11, color.NRGBA{R: 4, G: 5, B: 6, A: 255})

	r, err := RasterFromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Width)
	assert.Equal(t, 5, r.Height)

	red, green, blue := r.RGBAt(0, 0)
	assert.Equal(t, []uint8{1, 2, 3}, []uint8{red, green, blue})
	red, green, blue = r.RGBAt(3, 4)
	assert.Equal(t, []uint8{4, 5, 6}, []uint8{red, green, blue})
}

func TestRasterFromGrayImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(1, 0, color.Gray{Y: 77})

	r, err := RasterFromImage(img)
	require.NoError(t, err)
	red, green, blue := r.RGBAt(1, 0)
	assert.Equal(t, []uint8{77, 77, 77}, []uint8{red, green, blue})
}

func TestRasterFromEmptyImage(t *testing.T) {
	_, err := RasterFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestRasterRGBARoundTrip(t *testing.T) {
	r, err := RasterFromImage(getTestImage())
	require.NoError(t, err)

	back, err := RasterFromImage(r.RGBA())
	require.NoError(t, err)
	assert.Equal(t, r.Pix, back.Pix)
}

func TestPlaneGray(t *testing.T) {
	p, err := PlaneFromRows([][]uint8{{0, 128}, {255, 1}})
	require.NoError(t, err)

	g := p.Gray()
	assert.Equal(t, image.Rect(0, 0, 2, 2), g.Bounds())
	assert.Equal(t, uint8(128), g.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), g.GrayAt(0, 1).Y)
}

func TestChecksum(t *testing.T) {
	a, err := UniformPlane(4, 4, 1)
	require.NoError(t, err)
	b := a.Clone()
	assert.Equal(t, Checksum(a), Checksum(b))

	b.Set(0, 0, 2)
	assert.NotEqual(t, Checksum(a), Checksum(b))

	// Same samples in a different shape must not collide.
	c, err := UniformPlane(2, 8, 1)
	require.NoError(t, err)
	assert.NotEqual(t, Checksum(a), Checksum(c))

	assert.Equal(t, "empty", Checksum(nil))
}

func TestParallelCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000} {
		seen := make([]int, n)
		Parallel(n, func(start, end int) {
			for i := start; i < end; i++ {
				seen[i]++
			}
		})
		for i, c := range seen {
			require.Equal(t, 1, c, "index %d of %d", i, n)
		}
	}
}
