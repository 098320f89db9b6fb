package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore stores files in a single flat directory on local disk
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates the upload directory if needed and returns a store
// serving files under urlPrefix (e.g. "/uploads").
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Dir returns the directory files are stored in
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes the file under the given name
func (s *LocalStore) Save(name string, r io.Reader) error {
	f, err := os.Create(s.pathFor(name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	return f.Close()
}

// Remove deletes the named file; a missing file is not an error
func (s *LocalStore) Remove(name string) error {
	err := os.Remove(s.pathFor(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the public path the file is served under
func (s *LocalStore) URL(name string) string {
	return s.urlPrefix + "/" + name
}

// CheckWritable probes the store by creating and removing a marker file
func (s *LocalStore) CheckWritable() error {
	probe := s.pathFor(".healthcheck")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

// pathFor flattens the name to its base so stored names can never escape the
// upload directory.
func (s *LocalStore) pathFor(name string) string {
	return filepath.Join(s.dir, path.Base(name))
}

// FileName extracts the stored file name from a public URL path
func FileName(url string) string {
	return path.Base(url)
}
