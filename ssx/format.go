package ssx

import (
	"errors"
	"fmt"
	"image"
)

// Format identifies one of the fixed SSX layouts.
type Format int

// The known layouts, keyed by exact file length.
const (
	RawIndexed Format = iota + 1
	Mode1
	Mode2
	Linear2bpp
	Linear4bpp
)

// ErrUnsupportedFormat is matched by any UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("ssx: unsupported format")

// UnsupportedFormatError is returned when the input length doesn't match any
// known layout.
type UnsupportedFormatError struct {
	Size int64
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("ssx: invalid file size (%d bytes)", e.Size)
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// Classify returns the Format for an input of size bytes.
func Classify(size int64) (Format, error) {
	switch size {
	case rawSize:
		return RawIndexed, nil
	case mode1Size:
		return Mode1, nil
	case mode2Size:
		return Mode2, nil
	case linearData + clutSize2bpp:
		return Linear2bpp, nil
	case linearData + clutSize:
		return Linear4bpp, nil
	}
	return 0, &UnsupportedFormatError{Size: size}
}

// Size returns the exact length in bytes of a file in this format.
func (f Format) Size() int {
	switch f {
	case RawIndexed:
		return rawSize
	case Mode1:
		return mode1Size
	case Mode2:
		return mode2Size
	case Linear2bpp:
		return linearData + clutSize2bpp
	case Linear4bpp:
		return linearData + clutSize
	}
	return 0
}

// Width returns the horizontal resolution of the decoded image.
func (f Format) Width() int {
	switch f {
	case RawIndexed, Linear2bpp:
		return hiresWidth
	case Mode1, Mode2, Linear4bpp:
		return loresWidth
	}
	return 0
}

// Height returns the vertical resolution of the decoded image.
func (f Format) Height() int {
	if f.Width() == 0 {
		return 0
	}
	return screenLines
}

// Bounds returns the rectangle covered by the decoded image.
func (f Format) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width(), f.Height())
}

// CLUTSize returns the number of trailing CLUT bytes, or zero if the format
// has no embedded CLUT.
func (f Format) CLUTSize() int {
	switch f {
	case Mode1, Mode2, Linear4bpp:
		return clutSize
	case Linear2bpp:
		return clutSize2bpp
	}
	return 0
}

// Colors returns the number of logical colours a pixel can take.
func (f Format) Colors() int {
	if f == RawIndexed {
		return paletteColors
	}
	return f.CLUTSize()
}

func (f Format) String() string {
	switch f {
	case RawIndexed:
		return "raw indexed"
	case Mode1:
		return "mode 1"
	case Mode2:
		return "mode 2"
	case Linear2bpp:
		return "mode 3"
	case Linear4bpp:
		return "mode 4"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}
