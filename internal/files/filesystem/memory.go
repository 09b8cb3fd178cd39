package filesystem

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (f *memoryFileInfo) Name() string { return f.name }
func (f *memoryFileInfo) Size() int64  { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode {
	if f.isDir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (f *memoryFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem is an in-memory FileSystemProvider. Paths may use
// either separator; directories exist implicitly above added files.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{files: make(map[string][]byte)}
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)

// AddFile stores content at filePath, replacing any previous content.
func (m *MemoryFileSystem) AddFile(filePath string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(filePath)] = append([]byte(nil), content...)
}

func (m *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[clean(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), content...), nil
}

func (m *MemoryFileSystem) Stat(filePath string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := clean(filePath)
	if content, ok := m.files[p]; ok {
		return &memoryFileInfo{name: path.Base(p), size: int64(len(content))}, nil
	}
	for name := range m.files {
		if under(name, p) {
			return &memoryFileInfo{name: path.Base(p), isDir: true}, nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

func (m *MemoryFileSystem) Walk(root string, fn func(path string, info FileInfo) error) error {
	m.mu.RLock()
	r := clean(root)
	var names []string
	for name := range m.files {
		if name == r || under(name, r) {
			names = append(names, name)
		}
	}
	sizes := make(map[string]int64, len(names))
	for _, name := range names {
		sizes[name] = int64(len(m.files[name]))
	}
	m.mu.RUnlock()

	if len(names) == 0 {
		return &fs.PathError{Op: "walk", Path: root, Err: fs.ErrNotExist}
	}

	sort.Strings(names)
	for _, name := range names {
		if err := fn(name, &memoryFileInfo{name: path.Base(name), size: sizes[name]}); err != nil {
			return err
		}
	}
	return nil
}

func clean(p string) string {
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

func under(name, dir string) bool {
	if dir == "." {
		return true
	}
	return strings.HasPrefix(name, strings.TrimSuffix(dir, "/")+"/")
}
