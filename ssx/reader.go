package ssx

import (
	"image"
	"io"
)

// MaxSize is the length of the largest format. Anything longer is rejected
// without being buffered.
const MaxSize = rawSize

type decoder struct {
	r io.Reader

	format Format
	buf    []byte

	screen *Screen
}

func (d *decoder) readAll() error {
	b, err := io.ReadAll(io.LimitReader(d.r, MaxSize+1))
	if err != nil {
		return err
	}

	size := int64(len(b))
	if size > MaxSize {
		n, err := io.Copy(io.Discard, d.r)
		if err != nil {
			return err
		}
		size += n
	}

	if d.format, err = Classify(size); err != nil {
		return err
	}
	d.buf = b

	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readAll(); err != nil {
		return err
	}

	if configOnly {
		d.screen = &Screen{
			Format: d.format,
			CLUT:   clut(d.buf, d.format),
		}
		return nil
	}

	var err error
	d.screen, err = Parse(d.buf)
	return err
}

// Decode reads an SSX screen from r and returns it as an image.Image. The
// concrete type is *image.Paletted.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.screen.Paletted(), nil
}

// DecodeScreen reads an SSX screen from r without converting it to an image.
func DecodeScreen(r io.Reader) (*Screen, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.screen, nil
}

// DecodeConfig returns the color model and dimensions of an SSX screen
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.screen.Palette(),
		Width:      d.format.Width(),
		Height:     d.format.Height(),
	}, nil
}
