package svn

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoCommitPaths = errors.New("svn: no paths to commit")

// Commit runs `svn commit` for exactly the given repository-relative paths.
//
// The target list and the message go through temp files (--targets / -F) so
// neither shell quoting nor argv length limits can alter them, and the
// message encoding is declared explicitly instead of being guessed from the
// locale. Targets are committed non-recursively: the reconciled list is
// exact, and letting svn descend into directories would reintroduce the
// sweep-in problem reconciliation exists to prevent.
func (c *Client) Commit(ctx context.Context, paths []string, message string) error {
	if len(paths) == 0 {
		return ErrNoCommitPaths
	}

	targetsFile, err := writeTempFile("landr-targets-*", strings.Join(paths, "\n")+"\n")
	if err != nil {
		return err
	}
	defer os.Remove(targetsFile)

	messageFile, err := writeTempFile("landr-msg-*", message)
	if err != nil {
		return err
	}
	defer os.Remove(messageFile)

	_, err = c.run(ctx,
		"commit",
		"--depth", "empty",
		"--targets", targetsFile,
		"-F", messageFile,
		"--encoding", "UTF-8",
		"--force-log",
	)
	return err
}

func writeTempFile(pattern, content string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return filepath.Clean(f.Name()), nil
}
