package preview

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/bodgit/ssxview/ssx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bands = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xff, 0xff},
}

func bandImage() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, 256, 192), bands)
	for y := 0; y < 192; y++ {
		for x := 0; x < 256; x++ {
			m.SetColorIndex(x, y, uint8(x/64))
		}
	}
	return m
}

func TestThumbnail(t *testing.T) {
	m := Thumbnail(bandImage())
	assert.Equal(t, image.Rect(0, 0, 64, 48), m.Bounds())
	assert.IsType(t, &image.Paletted{}, m)

	for x := 0; x < 64; x++ {
		assert.Equal(t, bands[x/16], m.At(x, 47))
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 512, 192))
	assert.IsType(t, &image.RGBA{}, Thumbnail(rgba))
}

func TestEncodeDecode(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, bandImage()))
	assert.Equal(t, Size, b.Len())

	m, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), m.Bounds())

	for y := 0; y < 48; y += 7 {
		for x := 0; x < 64; x++ {
			assert.Equal(t, bands[x/16], m.At(x, y), "(%d, %d)", x, y)
		}
	}
}

func TestEncodeNibbleOrder(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 64, 48), bands)
	m.SetColorIndex(0, 0, 1)
	m.SetColorIndex(1, 0, 2)
	m.SetColorIndex(63, 47, 3)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	assert.Equal(t, byte(0x12), b.Bytes()[0])
	assert.Equal(t, byte(0x03), b.Bytes()[pixelBytes-1])
	assert.Equal(t, []byte{0xff, 0x00, 0x00}, b.Bytes()[pixelBytes+3:pixelBytes+6])
	// Unused palette entries are black.
	assert.Equal(t, make([]byte, 12*colorBytes), b.Bytes()[pixelBytes+4*colorBytes:])
}

func TestEncodeQuantizes(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 512, 192))
	for y := 0; y < 192; y++ {
		for x := 0; x < 512; x++ {
			m.Set(x, y, color.RGBA{uint8(x / 2), uint8(y), 0x80, 0xff})
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	assert.Equal(t, Size, b.Len())

	cfg, err := DecodeConfig(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
	assert.Len(t, cfg.ColorModel.(color.Palette), 16)
}

func TestEncodeKeepsFewColors(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 128, 96))
	for y := 0; y < 96; y++ {
		for x := 0; x < 128; x++ {
			m.Set(x, y, bands[(x/32)])
		}
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	d, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, bands[3], d.At(63, 0))
	assert.Equal(t, bands[0], d.At(0, 0))
}

func TestEncodeEmpty(t *testing.T) {
	assert.Equal(t, errEmpty, Encode(new(bytes.Buffer), image.NewRGBA(image.Rectangle{})))
}

func TestDecodeLength(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size-1)))
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader(make([]byte, Size+1)))
	assert.Equal(t, errTooMuch, err)

	_, err = DecodeConfig(bytes.NewReader(nil))
	assert.Equal(t, errNotEnough, err)
}

func TestWriteANSI(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 2, 3), bands)
	m.SetColorIndex(0, 0, 1)
	m.SetColorIndex(0, 1, 3)

	b := new(bytes.Buffer)
	require.NoError(t, WriteANSI(b, m))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀"))
	assert.True(t, strings.HasSuffix(lines[0], "\x1b[0m"))
	assert.NotContains(t, lines[1], "\x1b[48;2;")
	assert.Equal(t, 2, strings.Count(lines[1], "▀"))
}

func TestEncodeRawTopBitIsBlack(t *testing.T) {
	s, err := ssx.Parse(bytes.Repeat([]byte{0x80}, ssx.RawIndexed.Size()))
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, s.Paletted()))

	m, err := Decode(b)
	require.NoError(t, err)
	black := color.RGBA{0x00, 0x00, 0x00, 0xff}
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			require.Equal(t, black, m.At(x, y), "(%d, %d)", x, y)
		}
	}
}
