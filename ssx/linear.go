package ssx

// decodeLinear unpacks 8/bpp CLUT indices from every byte of b, leftmost
// pixel in the most significant bits.
func decodeLinear(b []byte, bpp uint) []uint8 {
	perByte := 8 / int(bpp)
	mask := byte(1)<<bpp - 1
	pix := make([]uint8, 0, len(b)*perByte)
	for _, n := range b {
		for i := perByte - 1; i >= 0; i-- {
			pix = append(pix, (n>>(bpp*uint(i)))&mask)
		}
	}
	return pix
}
