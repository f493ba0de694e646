// Package workspace binds landr to one Subversion working copy: root
// resolution, a cross-process lock, and read-only filesystem queries.
package workspace

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/reviewlab/landr/internal/utils"
)

const (
	adminDir = ".svn"
	lockFile = "landr.lock"
)

var (
	ErrWorkspaceLocked = errors.New("working copy locked by another landr process")
	ErrNotWorkingCopy  = errors.New("not a subversion working copy")
)

type Workspace struct {
	Root string

	flock *flock.Flock
}

func New(rootDir string) (*Workspace, error) {
	root, err := utils.ResolvePath(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
	}

	if !utils.DirExists(filepath.Join(root, adminDir)) {
		return nil, fmt.Errorf("%w: %s", ErrNotWorkingCopy, root)
	}

	// the lock lives inside the admin dir so `svn status` never sees it
	return &Workspace{
		Root:  root,
		flock: flock.New(filepath.Join(root, adminDir, lockFile)),
	}, nil
}

// Lock takes the working-copy lock so two landr invocations cannot race one
// working copy.
func (w *Workspace) Lock() error {
	locked, err := w.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock working copy: %w", err)
	}
	if !locked {
		return ErrWorkspaceLocked
	}

	return nil
}

func (w *Workspace) Unlock() error {
	if !w.flock.Locked() {
		return nil
	}

	if err := w.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to unlock working copy: %w", err)
	}

	return nil
}
