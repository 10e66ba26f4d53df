/*
Package display presents decoded SSX screens in a window.

Screens are scaled with nearest neighbour sampling to a fixed display size,
512 by 384 by default, which doubles the lines of every format and the
columns of the 256 pixel wide ones so the aspect ratio matches the original
hardware.
*/
package display

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultWidth is the width of the display in pixels.
	DefaultWidth = 512
	// DefaultHeight is the height of the display in pixels.
	DefaultHeight = 384
)

// Scale returns m resized to w by h pixels using nearest neighbour sampling.
func Scale(m image.Image, w, h int) *image.RGBA {
	r := image.Rect(0, 0, w, h)
	dst := image.NewRGBA(r)
	xdraw.NearestNeighbor.Scale(dst, r, m, m.Bounds(), draw.Src, nil)
	return dst
}
