package preview

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WriteANSI draws m to w using 24-bit color escape sequences, two pixel rows
// per line of text. An odd final row is drawn against the default
// background.
func WriteANSI(w io.Writer, m image.Image) error {
	bw := bufio.NewWriter(w)
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm", r>>8, g>>8, bl>>8)
			if y+1 < b.Max.Y {
				r, g, bl, _ = m.At(x, y+1).RGBA()
				fmt.Fprintf(bw, "\x1b[48;2;%d;%d;%dm", r>>8, g>>8, bl>>8)
			}
			bw.WriteString("▀")
		}
		bw.WriteString("\x1b[0m\n")
	}
	return bw.Flush()
}
