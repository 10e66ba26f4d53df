package ssx

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		size   int64
		format Format
		bounds image.Rectangle
		clut   int
		colors int
	}{
		{98304, RawIndexed, image.Rect(0, 0, 512, 192), 0, 128},
		{7120, Mode1, image.Rect(0, 0, 256, 192), 16, 16},
		{12304, Mode2, image.Rect(0, 0, 256, 192), 16, 16},
		{24580, Linear2bpp, image.Rect(0, 0, 512, 192), 4, 4},
		{24592, Linear4bpp, image.Rect(0, 0, 256, 192), 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			f, err := Classify(tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.format, f)
			assert.Equal(t, int(tt.size), f.Size())
			assert.Equal(t, tt.bounds, f.Bounds())
			assert.Equal(t, tt.clut, f.CLUTSize())
			assert.Equal(t, tt.colors, f.Colors())
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	sizes := []int64{0, 1, 6912, 6928, 7119, 7121, 12303, 12305, 24579, 24581, 24591, 24593, 98303, 98305, 98304 + 16, 1 << 40, -1}

	for _, size := range sizes {
		f, err := Classify(size)
		assert.Zero(t, f)
		require.Error(t, err, "size %d", size)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))

		var ufe *UnsupportedFormatError
		require.True(t, errors.As(err, &ufe))
		assert.Equal(t, size, ufe.Size)
	}
}

func TestUnsupportedFormatError(t *testing.T) {
	err := &UnsupportedFormatError{Size: 12303}
	assert.EqualError(t, err, "ssx: invalid file size (12303 bytes)")
}

func TestFormatZeroValue(t *testing.T) {
	var f Format
	assert.Equal(t, 0, f.Size())
	assert.Equal(t, image.Rectangle{}, f.Bounds())
	assert.Equal(t, "Format(0)", f.String())
}
