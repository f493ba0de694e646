package workspace

import (
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// statCacheSize bounds the memoized lstat results for one reconciliation
// snapshot. Revisions rarely declare more than a few hundred paths.
const statCacheSize = 4096

type statEntry struct {
	exists  bool
	symlink bool
}

// Oracle answers existence and symlink queries for repository-relative paths,
// bound to the working-copy root. Results are memoized for the lifetime of
// the oracle; the snapshot is read-only for one reconciliation, so staleness
// is not a concern.
type Oracle struct {
	root  string
	cache *lru.Cache[string, statEntry]
}

// NewOracle returns an oracle rooted at the workspace.
func (w *Workspace) NewOracle() (*Oracle, error) {
	cache, err := lru.New[string, statEntry](statCacheSize)
	if err != nil {
		return nil, err
	}

	return &Oracle{
		root:  w.Root,
		cache: cache,
	}, nil
}

// Exists reports whether the path is present on disk. Regular files,
// directories and symbolic links (even dangling ones) all count.
func (o *Oracle) Exists(path string) bool {
	return o.stat(path).exists
}

// IsSymlink reports whether the path itself is a symbolic link. The link
// target is never followed.
func (o *Oracle) IsSymlink(path string) bool {
	return o.stat(path).symlink
}

func (o *Oracle) stat(path string) statEntry {
	if entry, ok := o.cache.Get(path); ok {
		return entry
	}

	abs := filepath.Join(o.root, filepath.FromSlash(strings.TrimSuffix(path, "/")))

	var entry statEntry
	if info, err := os.Lstat(abs); err == nil {
		entry.exists = true
		entry.symlink = info.Mode()&os.ModeSymlink != 0
	}

	o.cache.Add(path, entry)
	return entry
}
