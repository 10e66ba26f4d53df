package ssx

import "image/color"

// Linear intensities, the same as SimCoupe uses.
var intensities = [8]uint8{0x00, 0x24, 0x49, 0x6d, 0x92, 0xb6, 0xdb, 0xff}

var palette = samPalette()

// Palette indices are laid out as GRBxgrb, where x (0x08) is shared as the
// lowest intensity bit of all three channels.
func rgbFromIndex(i uint8) color.RGBA {
	red := (i & 0x02) | ((i & 0x20) >> 3) | ((i & 0x08) >> 3)
	green := ((i & 0x04) >> 1) | ((i & 0x40) >> 4) | ((i & 0x08) >> 3)
	blue := ((i & 0x01) << 1) | ((i & 0x10) >> 2) | ((i & 0x08) >> 3)
	return color.RGBA{intensities[red], intensities[green], intensities[blue], 0xff}
}

func samPalette() (p [paletteColors]color.RGBA) {
	for i := range p {
		p[i] = rgbFromIndex(uint8(i))
	}
	return
}

// RGB returns the hardware colour for palette index i. Only the low 7 bits
// of i are significant.
func RGB(i uint8) color.RGBA {
	return palette[i&paletteMask]
}

// HardwarePalette returns a copy of the full 128 colour palette.
func HardwarePalette() color.Palette {
	p := make(color.Palette, paletteColors)
	for i, c := range palette {
		p[i] = c
	}
	return p
}
