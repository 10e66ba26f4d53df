package ssxview

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/bodgit/ssxview/preview"
	"github.com/bodgit/ssxview/ssx"
	_ "github.com/mattn/go-sqlite3"
)

// Catalog records SSX files found on disk. Files with identical contents
// share one screen row holding the format and a preview.
type Catalog struct {
	db *sql.DB
}

// Entry is a catalogued file.
type Entry struct {
	Path   string
	SHA1   string
	Format ssx.Format
}

func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS screen (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, format INTEGER NOT NULL, preview BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS file (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, screen_id INTEGER NOT NULL, FOREIGN KEY(screen_id) REFERENCES screen(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// AddFile decodes the SSX file at path and records it, returning the format.
// Files of an unrecognised size return an error matching
// ssx.ErrUnsupportedFormat and are not recorded.
func (c *Catalog) AddFile(path string) (ssx.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := sha1.New()
	s, err := ssx.DecodeScreen(io.TeeReader(f, h))
	if err != nil {
		return 0, err
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	id, err := c.addScreen(sha, s)
	if err != nil {
		return 0, err
	}

	if err := c.addFile(path, id); err != nil {
		return 0, err
	}

	return s.Format, nil
}

func (c *Catalog) addScreen(sha string, s *ssx.Screen) (int64, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM screen WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		b := new(bytes.Buffer)
		if err := preview.Encode(b, s.Paletted()); err != nil {
			return 0, err
		}
		// Another worker may have added the same screen in the meantime
		if _, err := c.db.Exec("INSERT OR IGNORE INTO screen (sha1, format, preview) VALUES (?, ?, ?)", sha, int(s.Format), b.Bytes()); err != nil {
			return 0, err
		}
		if err := c.db.QueryRow("SELECT id FROM screen WHERE sha1 = ?", sha).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

func (c *Catalog) addFile(path string, screen int64) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO file (path, screen_id) VALUES (?, ?)", path, screen); err != nil {
		return err
	}
	return nil
}

// Entries returns every catalogued file ordered by path.
func (c *Catalog) Entries() ([]Entry, error) {
	rows, err := c.db.Query("SELECT f.path, s.sha1, s.format FROM file AS f JOIN screen AS s ON f.screen_id = s.id ORDER BY f.path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var format int
		if err := rows.Scan(&e.Path, &e.SHA1, &format); err != nil {
			return nil, err
		}
		e.Format = ssx.Format(format)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Preview returns the thumbnail stored for path, or nil if there isn't one.
func (c *Catalog) Preview(path string) (image.Image, error) {
	var b []byte
	switch err := c.db.QueryRow("SELECT s.preview FROM file AS f JOIN screen AS s ON f.screen_id = s.id WHERE f.path = ?", path).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return preview.Decode(bytes.NewReader(b))
	default:
		return nil, err
	}
}

// Forget removes path from the catalog along with its screen if no other
// file shares it. It reports whether path was present.
func (c *Catalog) Forget(path string) (bool, error) {
	result, err := c.db.Exec("DELETE FROM file WHERE path = ?", path)
	if err != nil {
		return false, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if err := c.pruneScreens(); err != nil {
		return false, err
	}

	return n > 0, nil
}

// Remove any screens no longer referenced by a file
func (c *Catalog) pruneScreens() error {
	_, err := c.db.Exec("DELETE FROM screen WHERE id NOT IN (SELECT screen_id FROM file)")
	return err
}
