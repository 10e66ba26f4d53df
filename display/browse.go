package display

import "errors"

var errNoFiles = errors.New("display: no files to show")

// browser steps through a list of files, skipping any that fail to load.
type browser struct {
	loader *Loader
	paths  []string
	index  int
	frame  *Frame
}

// The first file must load, otherwise there's nothing to show.
func newBrowser(l *Loader, paths []string) (*browser, error) {
	if len(paths) == 0 {
		return nil, errNoFiles
	}
	frame, err := l.Load(paths[0])
	if err != nil {
		return nil, err
	}
	return &browser{
		loader: l,
		paths:  paths,
		frame:  frame,
	}, nil
}

func (b *browser) step(delta int) bool {
	n := len(b.paths)
	for i, tries := b.index, 1; tries < n; tries++ {
		i = ((i+delta)%n + n) % n
		frame, err := b.loader.Load(b.paths[i])
		if err != nil {
			b.loader.logger.Println(err)
			continue
		}
		b.index, b.frame = i, frame
		return true
	}
	return false
}
