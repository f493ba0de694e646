package svn

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/reviewlab/landr/internal/reconcile"
)

// Status returns the working-copy change flags per repository-relative path,
// parsed from `svn status` column output.
func (c *Client) Status(ctx context.Context) (reconcile.Status, error) {
	out, err := c.run(ctx, "status")
	if err != nil {
		return nil, err
	}
	return parseStatus(out), nil
}

// parseStatus reads `svn status` lines. The first column is the item status,
// the second column the property status; the path starts at column 8.
//
//	M       foo/bar.go
//	?       scratch.txt
//	!       lost.txt
func parseStatus(out string) reconcile.Status {
	status := reconcile.Status{}

	for _, line := range strings.Split(out, "\n") {
		if len(line) < 9 {
			continue
		}

		flags := itemFlag(line[0])
		if line[1] == 'M' {
			flags |= reconcile.FlagModified
		}
		if flags == 0 {
			continue
		}

		path := filepath.ToSlash(strings.TrimSpace(line[8:]))
		if path == "" {
			continue
		}
		status[path] |= flags
	}

	return status
}

func itemFlag(col byte) reconcile.Flag {
	switch col {
	case 'M':
		return reconcile.FlagModified
	case 'A':
		return reconcile.FlagAdded
	case 'D':
		return reconcile.FlagDeleted
	case 'R':
		// replaced: delete plus re-add in one commit
		return reconcile.FlagAdded | reconcile.FlagDeleted
	case '?':
		return reconcile.FlagUnversioned
	case '!':
		return reconcile.FlagMissing
	case 'C':
		return reconcile.FlagConflicted
	default:
		return 0
	}
}
