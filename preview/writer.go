package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

var errEmpty = errors.New("preview: image is empty")

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x += 2 {
			// This is masking off any bits leaving a 0-15 value
			if _, err := e.w.Write([]byte{(m.ColorIndexAt(x, y) & 0x0f << 4) | m.ColorIndexAt(x+1, y)&0x0f}); err != nil {
				return err
			}
		}
	}

	var tmp [colorBytes]byte
	for i := 0; i < maxColors; i++ {
		tmp = [colorBytes]byte{}
		if i < len(m.Palette) {
			r, g, b, _ := m.Palette[i].RGBA()
			tmp[0], tmp[1], tmp[2] = byte(r>>8), byte(g>>8), byte(b>>8)
		}
		if _, err := e.w.Write(tmp[:]); err != nil {
			return err
		}
	}

	return nil
}

// Thumbnail scales m to the preview size using nearest neighbour sampling so
// no new colors are introduced.
func Thumbnail(m image.Image) image.Image {
	r := image.Rect(0, 0, pixelX, pixelY)
	if p, ok := m.(*image.Paletted); ok {
		dst := image.NewPaletted(r, p.Palette)
		xdraw.NearestNeighbor.Scale(dst, r, p, p.Bounds(), draw.Src, nil)
		return dst
	}
	dst := image.NewRGBA(r)
	xdraw.NearestNeighbor.Scale(dst, r, m, m.Bounds(), draw.Src, nil)
	return dst
}

// Returns the colors used by m in order of appearance, stopping once there
// are more than maxColors
func uniqueColors(m image.Image) color.Palette {
	b := m.Bounds()
	seen := make(map[color.RGBA]struct{})
	var p color.Palette
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			p = append(p, c)
			if len(p) > maxColors {
				return p
			}
		}
	}
	return p
}

// Encode writes a preview of the Image m to w. The image is scaled to fit
// and reduced to 16 colors if necessary.
func Encode(w io.Writer, m image.Image) error {
	if m.Bounds().Empty() {
		return errEmpty
	}

	t := Thumbnail(m)
	b := t.Bounds()

	pm, _ := t.(*image.Paletted)
	if pm == nil || len(pm.Palette) > maxColors {
		p := uniqueColors(t)
		if len(p) > maxColors {
			q := quantize.MedianCutQuantizer{}
			p = q.Quantize(make(color.Palette, 0, maxColors), t)
		}
		pm = image.NewPaletted(b, p)
		draw.Draw(pm, b, t, b.Min, draw.Src)
	}

	e := encoder{w: w}

	return e.encode(pm)
}
