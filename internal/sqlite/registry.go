package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/josedab/pocket/pkg/types"
)

// DefaultExt is appended to a logical name to form the default backing
// file name when an open supplies no explicit path.
const DefaultExt = ".db"

// Registry maps logical names to open handles. The registry mutex guards
// only the map structure; statement execution serializes on the per-handle
// mutex, so activity on one database never blocks another.
type Registry struct {
	mu      sync.RWMutex
	dataDir string
	handles map[string]*Handle
	closed  bool
}

// NewRegistry creates an empty registry whose default backing files live
// under dataDir.
func NewRegistry(dataDir string) *Registry {
	return &Registry{
		dataDir: dataDir,
		handles: make(map[string]*Handle),
	}
}

// resolvePath computes the effective backing-file path for name: the
// explicit path if non-empty, else dataDir/name + DefaultExt.
func (r *Registry) resolvePath(name, path string) string {
	if path != "" {
		return path
	}
	return filepath.Join(r.dataDir, name+DefaultExt)
}

// Open registers a database under name. If name is already registered the
// call is a no-op success; otherwise the backing file at path (or the
// default path) is opened and configured. On failure the registry is left
// unchanged and no connection is leaked.
func (r *Registry) Open(name, path string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false, types.ErrBridgeClosed
	}
	if _, ok := r.handles[name]; ok {
		return true, nil
	}

	h, err := openHandle(r.resolvePath(name, path))
	if err != nil {
		return false, fmt.Errorf("open database %q: %w", name, err)
	}
	r.handles[name] = h
	return true, nil
}

// Close removes and closes the named handle; no-op if absent. It returns
// once any in-flight statement on the handle has finished.
func (r *Registry) Close(name string) {
	r.mu.Lock()
	h := r.handles[name]
	delete(r.handles, name)
	r.mu.Unlock()

	if h != nil {
		// Outside the registry lock: draining an in-flight statement
		// must not stall operations on other databases.
		_ = h.close()
	}
}

// Exists reports whether name is currently registered.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handles[name]
	return ok
}

// Delete closes the named handle if open (releasing its lock on the
// backing file), then removes the backing file. Deleting a name that was
// never opened still attempts removal at the default path and reports
// failure if the file is absent. WAL sidecar files are removed best-effort.
// Like Open, Delete refuses with ErrBridgeClosed once the registry is
// closed.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return types.ErrBridgeClosed
	}
	h := r.handles[name]
	delete(r.handles, name)
	r.mu.Unlock()

	path := r.resolvePath(name, "")
	if h != nil {
		path = h.path
		_ = h.close()
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete database %q: %w", name, err)
	}
	_ = os.Remove(path + "-wal")
	_ = os.Remove(path + "-shm")
	return nil
}

// Size returns the backing file size in bytes for name, or 0 if name is
// not open or the file is absent.
func (r *Registry) Size(name string) int64 {
	h := r.resolve(name)
	if h == nil {
		return 0
	}
	return h.FileSize()
}

// Names returns the registered logical names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handles))
	for name := range r.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolve looks up the handle for name, holding the registry lock only for
// the lookup. A handle removed from the map is unresolvable, so no new
// statement can start on a closing handle.
func (r *Registry) resolve(name string) *Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handles[name]
}

// CloseAll closes every remaining handle and marks the registry closed.
// Subsequent opens fail with ErrBridgeClosed; CloseAll is idempotent.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	handles := r.handles
	r.handles = make(map[string]*Handle)
	r.closed = true
	r.mu.Unlock()

	var firstErr error
	for name, h := range handles {
		if err := h.close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close database %q: %w", name, err)
		}
	}
	return firstErr
}
