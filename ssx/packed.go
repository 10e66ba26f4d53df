package ssx

// Modes 1 and 2 store one bit per pixel plus one attribute byte for every
// run of 8 pixels. A set bit selects the ink colour in bits 0-2 of the
// attribute, a clear bit the paper colour in bits 3-5, and bit 6 adds 8 to
// either. Mode 1 interleaves the bitmap the same way as the ZX Spectrum and
// has one attribute row per 8 lines; mode 2 is linear with an attribute byte
// per line.

func attrColour(data, attr byte, x int) uint8 {
	mask := byte(1) << (7 - (x & 0x07))
	var bright uint8
	if attr&0x40 != 0 {
		bright = 8
	}
	shift := 3
	if data&mask != 0 {
		shift = 0
	}
	return bright + ((attr >> shift) & 7)
}

func mode1Offsets(x, y int) (int, int) {
	data := ((y & 0xc0) << 5) + ((y & 0x38) << 2) + ((y & 0x07) << 8) + ((x & 0xf8) >> 3)
	attr := attrOffset + ((y & 0xf8) << 2) + ((x & 0xf8) >> 3)
	return data, attr
}

func mode2Offsets(x, y int) (int, int) {
	data := (y << 5) + ((x & 0xf8) >> 3)
	return data, data + attrOffset
}

func decodePacked(b []byte, offsets func(x, y int) (int, int)) []uint8 {
	pix := make([]uint8, 0, loresWidth*screenLines)
	for y := 0; y < screenLines; y++ {
		for x := 0; x < loresWidth; x++ {
			data, attr := offsets(x, y)
			pix = append(pix, attrColour(b[data], b[attr], x))
		}
	}
	return pix
}

// decodeMode1 returns the CLUT index of every pixel in a mode 1 display,
// b being the file without its CLUT.
func decodeMode1(b []byte) []uint8 {
	return decodePacked(b, mode1Offsets)
}

func decodeMode2(b []byte) []uint8 {
	return decodePacked(b, mode2Offsets)
}
