package reconcile

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Reconcile compares the declared path set against the working-copy snapshot
// and returns the final commit set plus advisory findings.
//
// A structural conflict (a declared directory containing an excluded local
// change) fails immediately with a *ConflictError: committing the directory
// would sweep in the unintended descendant, and no advisory can fix that.
// An empty final set fails with an *EmptyCommitError. Everything else is
// reported in the Result and left to the caller's decision policy.
//
// Reconcile performs no I/O beyond the injected oracle and never prompts;
// interaction belongs to the policy layer.
func Reconcile(declared mapset.Set[string], status Status, oracle ExistenceOracle) (*Result, error) {
	extras := extraLocalPaths(declared, status)

	// Directory-containment conflicts invalidate the whole attempt. Checked
	// before anything else so no advisory flow starts on a doomed commit.
	declaredSorted := declared.ToSlice()
	sort.Strings(declaredSorted)
	for _, p := range extras {
		for _, d := range declaredSorted {
			if isPathUnder(d, p) {
				return nil, &ConflictError{Dir: d, Path: p}
			}
		}
	}

	// The remaining extras are local edits the revision deliberately leaves
	// out. Legitimate, but the operator should know.
	unincluded := extras

	final := mapset.NewSet[string]()
	var missing []string
	for _, p := range declaredSorted {
		switch {
		case oracle.Exists(p) || oracle.IsSymlink(p):
			final.Add(p)
		case status[p].Has(FlagDeleted):
			// Absent from disk but staged for deletion: the commit is what
			// finalizes the delete, so the path stays in.
			final.Add(p)
		default:
			missing = append(missing, p)
		}
	}

	if final.Cardinality() == 0 {
		return nil, &EmptyCommitError{Declared: declared.Cardinality()}
	}

	return &Result{
		FinalPaths:              final,
		UnincludedModifications: unincluded,
		MissingPaths:            missing,
	}, nil
}

// extraLocalPaths returns the sorted status paths that are not members of the
// declared set.
func extraLocalPaths(declared mapset.Set[string], status Status) []string {
	var extras []string
	for p := range status {
		if declared.Contains(p) || declared.Contains(p+"/") {
			continue
		}
		extras = append(extras, p)
	}
	sort.Strings(extras)
	return extras
}

// isPathUnder reports whether p is a descendant of dir. Purely lexical on
// repository-relative forward-slash paths: symlinks are never traversed, so a
// descendant reachable only through a link does not count.
func isPathUnder(dir, p string) bool {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" || dir == "." {
		return false
	}
	return strings.HasPrefix(p, dir+"/") && len(p) > len(dir)+1
}
