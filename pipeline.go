package ssxview

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/ssxview/ssx"
)

const (
	extension  = ".ssx"
	numWorkers = 10
)

func (v *SSXView) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), extension) {
				return nil
			}

			if info.Size() > ssx.MaxSize {
				v.logger.Printf("Skipping \"%s\", %d bytes is too big\n", file, info.Size())
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (v *SSXView) fileWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			format, err := v.db.AddFile(file)
			switch {
			case errors.Is(err, ssx.ErrUnsupportedFormat):
				v.logger.Printf("Skipping \"%s\": %s\n", file, err)
			case err != nil:
				errc <- err
				return
			default:
				v.logger.Printf("Added \"%s\" as %s\n", file, format)
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Forget any catalogued files under base that no longer exist
func (v *SSXView) prune(base string) error {
	entries, err := v.db.Entries()
	if err != nil {
		return err
	}

	prefix := base + string(os.PathSeparator)
	for _, e := range entries {
		if !strings.HasPrefix(e.Path, prefix) {
			continue
		}
		if _, err := os.Stat(e.Path); !os.IsNotExist(err) {
			continue
		}
		if _, err := v.db.Forget(e.Path); err != nil {
			return err
		}
		v.logger.Printf("Removed \"%s\"\n", e.Path)
	}

	return v.db.pruneScreens()
}

// Scan walks the directory tree at path adding every SSX file to the
// catalog.
func (v *SSXView) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := v.findFiles(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := v.fileWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return err
	}

	return v.prune(dir)
}
