package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ImageFormat
		wantErr bool
	}{
		{"jpg", FormatJPEG, false},
		{".JPEG", FormatJPEG, false},
		{"png", FormatPNG, false},
		{".webp", FormatWebP, false},
		{"bmp", FormatBMP, false},
		{"tiff", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/tmp/out/AG2.png")
	assert.NoError(t, err)
	assert.Equal(t, FormatPNG, f)
	assert.Equal(t, ".png", f.Extension())

	_, err = FormatFromPath("noext")
	assert.Error(t, err)
}
