package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-vision/images"
)

func TestPlaneToMat(t *testing.T) {
	p, err := images.PlaneFromRows([][]uint8{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	mat, err := PlaneToMat(p)
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 2, mat.Rows())
	assert.Equal(t, 3, mat.Cols())
	assert.Equal(t, 1, mat.Channels())
	assert.Equal(t, uint8(6), mat.GetUCharAt(1, 2))
}

func TestRasterToMatIsBGR(t *testing.T) {
	r, err := images.NewRaster(2, 1)
	require.NoError(t, err)
	r.SetRGB(1, 0, 10, 20, 30)

	mat, err := RasterToMat(r)
	require.NoError(t, err)
	defer mat.Close()

	assert.Equal(t, 3, mat.Channels())
	v := mat.GetVecbAt(0, 1)
	assert.Equal(t, []uint8{30, 20, 10}, []uint8(v))
}

func TestToMatRejectsMalformedInput(t *testing.T) {
	mat, err := PlaneToMat(&images.Plane{Width: 2, Height: 2})
	assert.ErrorIs(t, err, images.ErrInvalidDimensions)
	mat.Close()

	mat, err = RasterToMat(&images.Raster{Width: 1, Height: 1})
	assert.ErrorIs(t, err, images.ErrInvalidDimensions)
	mat.Close()
}
