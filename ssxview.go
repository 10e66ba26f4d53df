/*
Package ssxview is a library for cataloguing and viewing SAM Coupé SSX screen
captures.
*/
package ssxview

import (
	"image"
	"log"
	"path/filepath"
)

type SSXView struct {
	db     *Catalog
	logger *log.Logger
}

// New opens, or creates, the catalog database in file.
func New(file string, logger *log.Logger) (*SSXView, error) {
	db, err := NewCatalog(file)
	if err != nil {
		return nil, err
	}
	return &SSXView{
		db:     db,
		logger: logger,
	}, nil
}

func (v *SSXView) Close() error {
	return v.db.Close()
}

// List returns every catalogued file ordered by path.
func (v *SSXView) List() ([]Entry, error) {
	return v.db.Entries()
}

// Preview returns the stored thumbnail for the file at path, or nil if the
// file hasn't been catalogued.
func (v *SSXView) Preview(path string) (image.Image, error) {
	return v.db.Preview(path)
}

// Forget removes the file at path from the catalog.
func (v *SSXView) Forget(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	ok, err := v.db.Forget(abs)
	if err != nil {
		return err
	}
	if !ok {
		v.logger.Printf("No entry for \"%s\"\n", abs)
	}
	return nil
}
