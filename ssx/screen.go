package ssx

import (
	"image"
	"image/color"
)

// Screen is a decoded SSX file: a logical colour for every pixel and the
// CLUT mapping logical colours to hardware palette indices.
type Screen struct {
	Format Format

	// Pix holds Format.Width() * Format.Height() logical colours, row-major.
	Pix []uint8

	// CLUT has Format.Colors() entries. For RawIndexed it is the identity.
	CLUT []uint8
}

// Parse decodes the screen held in b. The length of b selects the format.
func Parse(b []byte) (*Screen, error) {
	f, err := Classify(int64(len(b)))
	if err != nil {
		return nil, err
	}

	s := &Screen{
		Format: f,
		CLUT:   clut(b, f),
	}

	data := b[:len(b)-f.CLUTSize()]
	switch f {
	case RawIndexed:
		s.Pix = make([]uint8, len(data))
		for i, v := range data {
			s.Pix[i] = v & paletteMask
		}
	case Mode1:
		s.Pix = decodeMode1(data)
	case Mode2:
		s.Pix = decodeMode2(data)
	case Linear2bpp:
		s.Pix = decodeLinear(data[:linearData], 2)
	case Linear4bpp:
		s.Pix = decodeLinear(data[:linearData], 4)
	}

	return s, nil
}

func clut(b []byte, f Format) []uint8 {
	if f == RawIndexed {
		c := make([]uint8, paletteColors)
		for i := range c {
			c[i] = uint8(i)
		}
		return c
	}
	c := make([]uint8, f.CLUTSize())
	copy(c, b[len(b)-len(c):])
	return c
}

// Bounds returns the dimensions of the screen.
func (s *Screen) Bounds() image.Rectangle {
	return s.Format.Bounds()
}

// Palette returns the CLUT resolved through the hardware palette.
func (s *Screen) Palette() color.Palette {
	p := make(color.Palette, len(s.CLUT))
	for i, c := range s.CLUT {
		p[i] = RGB(c)
	}
	return p
}

// Paletted returns the screen as an image.Paletted. Pix is shared with s.
func (s *Screen) Paletted() *image.Paletted {
	return &image.Paletted{
		Pix:     s.Pix,
		Stride:  s.Format.Width(),
		Rect:    s.Bounds(),
		Palette: s.Palette(),
	}
}

// RGBA resolves every pixel through the CLUT and hardware palette.
func (s *Screen) RGBA() *image.RGBA {
	m := image.NewRGBA(s.Bounds())
	for i, v := range s.Pix {
		c := RGB(s.CLUT[v])
		m.Pix[i*4+0] = c.R
		m.Pix[i*4+1] = c.G
		m.Pix[i*4+2] = c.B
		m.Pix[i*4+3] = c.A
	}
	return m
}
