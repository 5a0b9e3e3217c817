// Package jsondb persists a whole JSON document per file.
//
// Every table in this shop (products, orders, settings) is one JSON file
// that is read in full and rewritten in full. Writes go to a temporary file
// in the same directory followed by an atomic rename, so a reader racing a
// writer always sees either the old document or the new one — never a
// truncated file.
package jsondb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt wraps a decode failure of an existing document. Callers decide
// whether that degrades to an empty table (order history) or is fatal.
var ErrCorrupt = errors.New("jsondb: corrupt document")

// File is one JSON document on disk. The mutex serialises the
// read-modify-write-rename cycle; plain reads go without the lock and rely
// on the rename discipline.
type File struct {
	path string
	mu   sync.Mutex
}

// Open returns a handle for the document at path. The file itself is not
// created until the first Write.
func Open(path string) *File {
	return &File{path: path}
}

// Path returns the document location.
func (f *File) Path() string { return f.path }

// Exists reports whether the document has been written yet.
func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Read decodes the document into dest. A missing file leaves dest untouched
// and returns (false, nil). A present but undecodable file returns
// (false, ErrCorrupt-wrapped error).
func (f *File) Read(dest interface{}) (bool, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("jsondb: read %s: %w", f.path, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
	}
	return true, nil
}

// Write replaces the whole document. The new content is written to a
// temporary file and renamed over the old one; rename is atomic on POSIX
// filesystems, which is what keeps lock-free readers safe.
func (f *File) Write(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsondb: marshal %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsondb: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("jsondb: temp file for %s: %w", f.path, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(raw)
	if werr == nil {
		werr = tmp.Sync()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsondb: write %s: %w", f.path, werr)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsondb: rename %s: %w", f.path, err)
	}
	return nil
}

// Update runs fn under the document lock. fn receives nothing; it is
// expected to call Read and Write on the same handle. Used by stores that
// need the whole read-modify-write cycle to be exclusive.
func (f *File) Update(fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn()
}
