package display

import (
	"fmt"
	"image"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/ssxview/ssx"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of scaled screens a Loader keeps.
const DefaultCacheSize = 16

// Frame is a screen ready to be displayed.
type Frame struct {
	Path   string
	Format ssx.Format
	Image  *image.RGBA
}

// Loader reads SSX files and scales them to the display size, keeping
// recently used results.
type Loader struct {
	width, height int
	cache         *lru.Cache[string, *Frame]
	logger        *log.Logger
}

// NewLoader returns a Loader producing w by h frames and caching up to size
// of them.
func NewLoader(w, h, size int, logger *log.Logger) (*Loader, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("display: invalid size %dx%d", w, h)
	}
	cache, err := lru.New[string, *Frame](size)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Loader{
		width:  w,
		height: h,
		cache:  cache,
		logger: logger,
	}, nil
}

// Size returns the dimensions of the frames produced by l.
func (l *Loader) Size() (int, int) {
	return l.width, l.height
}

// Load returns the frame for the SSX file at path.
func (l *Loader) Load(path string) (*Frame, error) {
	if f, ok := l.cache.Get(path); ok {
		return f, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ssx.DecodeScreen(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.logger.Printf("Decoded \"%s\" as %s %dx%d\n", path, s.Format, s.Format.Width(), s.Format.Height())

	frame := &Frame{
		Path:   path,
		Format: s.Format,
		Image:  Scale(s.RGBA(), l.width, l.height),
	}
	l.cache.Add(path, frame)

	return frame, nil
}
