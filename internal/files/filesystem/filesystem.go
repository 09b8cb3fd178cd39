package filesystem

import (
	"io/fs"
)

// FileInfo is fs.FileInfo under a local name.
type FileInfo = fs.FileInfo

// FileSystemProvider reads captured output files.
type FileSystemProvider interface {
	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for path.
	Stat(path string) (FileInfo, error)

	// Walk calls fn for every regular file under root in lexical order.
	// Returning an error from fn stops the walk with that error.
	Walk(root string, fn func(path string, info FileInfo) error) error
}
