//go:build !headless

package display

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type viewer struct {
	*browser
	image *ebiten.Image
}

func (v *viewer) refresh() {
	if v.image != nil {
		v.image.Deallocate()
	}
	v.image = ebiten.NewImageFromImage(v.frame.Image)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%s) [%d/%d]", filepath.Base(v.frame.Path), v.frame.Format, v.index+1, len(v.paths)))
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (v *viewer) Update() error {
	switch {
	case anyJustPressed(ebiten.KeyEscape, ebiten.KeyQ):
		return ebiten.Termination
	case anyJustPressed(ebiten.KeyArrowRight, ebiten.KeyPageDown, ebiten.KeySpace):
		if v.step(1) {
			v.refresh()
		}
	case anyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyPageUp, ebiten.KeyBackspace):
		if v.step(-1) {
			v.refresh()
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.image, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.loader.Size()
}

// Show opens a window displaying the first of paths and blocks until it is
// closed. The arrow keys step through the rest.
func Show(l *Loader, paths []string, zoom int) error {
	b, err := newBrowser(l, paths)
	if err != nil {
		return err
	}

	if zoom < 1 {
		zoom = 1
	}
	w, h := l.Size()

	v := &viewer{browser: b}
	v.refresh()

	ebiten.SetWindowSize(w*zoom, h*zoom)
	ebiten.SetWindowResizable(true)

	return ebiten.RunGame(v)
}
