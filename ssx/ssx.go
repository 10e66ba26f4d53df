/*
Package ssx implements a decoder for SAM Coupé SSX screen captures.

An SSX file is an uncompressed dump of the display memory in one of the four
SAM screen modes. There is no header; the layout is recognised purely by the
file length:

	RawIndexed   98304 bytes  512x192, one palette index per pixel
	Mode1         7120 bytes  256x192, Spectrum-style bitmap and attributes
	Mode2        12304 bytes  256x192, linear bitmap and attributes
	Linear2bpp   24580 bytes  512x192, 2 bits per pixel
	Linear4bpp   24592 bytes  256x192, 4 bits per pixel

Every format except RawIndexed is followed by the colour lookup table (CLUT),
4 entries for Linear2bpp and 16 for the rest, each entry being a 7-bit index
into the fixed 128 colour hardware palette.
*/
package ssx

const (
	hiresWidth  = 512
	loresWidth  = 256
	screenLines = 192

	lineBytes    = 32
	linearStride = 128
	attrOffset   = 0x1800

	// Mode 1 files carry 192 bytes of slack between the attributes and the
	// CLUT, which always occupies the last 16 bytes.
	mode1Slack = 192
	mode1Size  = lineBytes*screenLines + lineBytes*24 + mode1Slack + clutSize
	mode2Size  = lineBytes*screenLines + lineBytes*screenLines + clutSize
	linearData = linearStride * screenLines
	rawSize    = hiresWidth * screenLines

	clutSize      = 16
	clutSize2bpp  = 4
	paletteColors = 128
	paletteMask   = paletteColors - 1
)
