package storage

import "io"

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// FileStore is the narrow interface the upload paths consume. The production
// implementation is a flat directory on local disk served statically by the
// router; deletion of a missing file is not an error (removal is best-effort
// on the cascade paths).
type FileStore interface {
	// Save writes the file under the given name, replacing any existing file
	Save(name string, r io.Reader) error
	// Remove deletes the named file; a missing file is not an error
	Remove(name string) error
	// URL returns the public path the file is served under
	URL(name string) string
	// CheckWritable probes that the store can accept writes
	CheckWritable() error
}
