package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/nvr-ai/go-vision/images"
)

func getTestImage() image.Image {
	// Create a simple 100x100 red image.
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}
	return img
}

func getJPEGBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, getTestImage(), nil))
	return buf.Bytes()
}

func getPNGBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, getTestImage()))
	return buf.Bytes()
}

func getWebPBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, getTestImage(), &webp.Options{Quality: 80}))
	return buf.Bytes()
}

func getBMPBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, getTestImage()))
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   func(t *testing.T) []byte
		format images.ImageFormat
	}{
		{"JPEG", getJPEGBytes, images.FormatJPEG},
		{"PNG", getPNGBytes, images.FormatPNG},
		{"WebP", getWebPBytes, images.FormatWebP},
		{"BMP", getBMPBytes, images.FormatBMP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := Decode(tt.data(t))
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, 100, img.Bounds().Dx())
			assert.Equal(t, 100, img.Bounds().Dy())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := Decode(nil)
	assert.Error(t, err, "empty data")

	_, _, err = Decode([]byte("not an image"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	// Valid PNG signature, truncated body.
	_, format, err := Decode(getPNGBytes(t)[:20])
	assert.Error(t, err)
	assert.Equal(t, images.FormatPNG, format)
}

func TestToWorkingRasterResizes(t *testing.T) {
	r, err := ToWorkingRaster(getTestImage(), images.WorkingSize)
	require.NoError(t, err)
	assert.Equal(t, images.WorkingSize, r.Width)
	assert.Equal(t, images.WorkingSize, r.Height)

	red, green, blue := r.RGBAt(256, 256)
	assert.InDelta(t, 255, int(red), 2)
	assert.Equal(t, uint8(0), green)
	assert.Equal(t, uint8(0), blue)
}

func TestToWorkingRasterKeepsExactSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 2, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	r, err := ToWorkingRaster(src, 4)
	require.NoError(t, err)
	red, green, blue := r.RGBAt(1, 2)
	assert.Equal(t, []uint8{9, 8, 7}, []uint8{red, green, blue}, "no resampling when already at size")
}

func TestToWorkingRasterErrors(t *testing.T) {
	_, err := ToWorkingRaster(getTestImage(), 0)
	assert.ErrorIs(t, err, images.ErrInvalidDimensions)

	_, err = ToWorkingRaster(image.NewRGBA(image.Rectangle{}), images.WorkingSize)
	assert.ErrorIs(t, err, images.ErrInvalidDimensions)
}

func TestSavePlanePNGIsLossless(t *testing.T) {
	p, err := images.PlaneFromRows([][]uint8{{0, 1, 2}, {253, 254, 255}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "AG.png")
	require.NoError(t, SavePlane(path, p, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	img, format, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, images.FormatPNG, format)

	gray, ok := img.(*image.Gray)
	require.True(t, ok, "grayscale PNG decodes to *image.Gray")
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			assert.Equal(t, p.At(x, y), gray.GrayAt(x, y).Y)
		}
	}
}

func TestSaveRasterJPEG(t *testing.T) {
	r, err := ToWorkingRaster(getTestImage(), 64)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "RC_color.jpg")
	require.NoError(t, SaveRaster(path, r, DefaultQuality))

	loaded, err := LoadRaster(path, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, loaded.Width)
	red, _, _ := loaded.RGBAt(32, 32)
	assert.InDelta(t, 255, int(red), 4, "JPEG at quality 95 keeps a flat colour close")
}

func TestSaveImageUnknownExtension(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "x.tiff"), getTestImage(), 0)
	assert.Error(t, err)
}

func TestLoadRasterMissingFile(t *testing.T) {
	_, err := LoadRaster(filepath.Join(t.TempDir(), "missing.jpg"), images.WorkingSize)
	assert.Error(t, err)
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, getTestImage(), images.ImageFormat("gif"), 90))
}
