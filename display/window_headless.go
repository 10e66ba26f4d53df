//go:build headless

package display

import "errors"

// ErrHeadless is returned by Show in builds without a window system.
var ErrHeadless = errors.New("display: built without window support")

// Show checks the first of paths can be loaded but cannot open a window.
func Show(l *Loader, paths []string, zoom int) error {
	if _, err := newBrowser(l, paths); err != nil {
		return err
	}
	return ErrHeadless
}
