// Package reconcile compares a revision's declared path set against the live
// working-copy state and produces the final, safe-to-commit file list.
package reconcile

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Flag is a bitset of working-copy change flags for one path.
type Flag uint8

const (
	FlagModified Flag = 1 << iota
	FlagAdded
	FlagDeleted
	FlagUnversioned
	FlagMissing
	FlagConflicted
)

// Has reports whether all bits in o are set.
func (f Flag) Has(o Flag) bool {
	return f&o == o
}

func (f Flag) String() string {
	names := []struct {
		flag Flag
		name string
	}{
		{FlagModified, "modified"},
		{FlagAdded, "added"},
		{FlagDeleted, "deleted"},
		{FlagUnversioned, "unversioned"},
		{FlagMissing, "missing"},
		{FlagConflicted, "conflicted"},
	}
	s := ""
	for _, n := range names {
		if f.Has(n.flag) {
			if s != "" {
				s += "+"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Status is a snapshot of working-copy change flags per repository-relative path.
// It is not live-updated during reconciliation.
type Status map[string]Flag

// ExistenceOracle answers read-only filesystem queries relative to the
// working-copy root. It is independent of Status: a path can be flagged
// deleted yet intentionally absent, or declared yet missing from disk.
type ExistenceOracle interface {
	Exists(path string) bool
	IsSymlink(path string) bool
}

// Result is the outcome of a successful reconciliation.
type Result struct {
	// FinalPaths is the set of paths to actually commit. Always a subset of
	// the declared set.
	FinalPaths mapset.Set[string]
	// UnincludedModifications lists paths changed in the working copy but
	// absent from the declared set. Advisory.
	UnincludedModifications []string
	// MissingPaths lists declared paths that do not exist on disk and are not
	// explained by a deleted flag. Advisory; they are dropped from FinalPaths.
	MissingPaths []string
}

// SortedFinalPaths returns FinalPaths as a sorted slice, for stable output
// and a stable commit target list.
func (r *Result) SortedFinalPaths() []string {
	paths := r.FinalPaths.ToSlice()
	sort.Strings(paths)
	return paths
}

// ConflictError is a structural conflict: the declared set includes a
// directory while a locally changed descendant is excluded from it. The VCS
// operation on the directory would sweep the descendant in, so no advisory
// can make the commit safe.
type ConflictError struct {
	// Dir is the declared directory.
	Dir string
	// Path is the excluded descendant with local changes.
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: declared directory %q contains local change %q which is not part of the revision", e.Dir, e.Path)
}

// EmptyCommitError is returned when no committable paths remain after
// reconciliation.
type EmptyCommitError struct {
	// Declared is the size of the declared set, for the diagnostic.
	Declared int
}

func (e *EmptyCommitError) Error() string {
	return fmt.Sprintf("nothing to commit: all %d declared paths are missing from the working copy", e.Declared)
}
