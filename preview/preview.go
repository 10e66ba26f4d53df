/*
Package preview implements the small thumbnail format stored in the screen
catalog.

A preview is exactly 64 by 48 pixels, an eighth of the 512 by 384 display
size, with no more than 16 colors. It is written as 1536 bytes of pixel
information, a 4-bit index for each pixel with the left pixel in the upper
nibble, followed by 16 colors stored as 8-bit red, green and blue bytes.
Unused palette entries are black. There is no compression so the result is
always 1584 bytes.
*/
package preview

const (
	pixelX      = 64
	pixelY      = 48
	numPixels   = pixelX * pixelY
	pixelBytes  = numPixels >> 1
	maxColors   = 16
	colorBytes  = 3
	paletteSize = maxColors * colorBytes

	// Size is the length in bytes of an encoded preview.
	Size = pixelBytes + paletteSize
)
