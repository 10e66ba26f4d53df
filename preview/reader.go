package preview

import (
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errNotEnough = errors.New("preview: not enough image data")
	errTooMuch   = errors.New("preview: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

type decoder struct {
	r io.Reader

	image   *image.Paletted
	palette color.Palette

	tmp [Size]byte
}

func (d *decoder) readPalette() {
	d.palette = make(color.Palette, maxColors)
	for i := range d.palette {
		c := d.tmp[pixelBytes+i*colorBytes:]
		d.palette[i] = color.RGBA{c[0], c[1], c[2], 0xff}
	}
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	d.readPalette()

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, pixelX, pixelY), d.palette)

	for i, b := range d.tmp[:pixelBytes] {
		d.image.Pix[i<<1+0] = upperNibble(b) >> 4
		d.image.Pix[i<<1+1] = lowerNibble(b)
	}

	return nil
}

// Decode reads a preview from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a preview without
// decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      pixelX,
		Height:     pixelY,
	}, nil
}
