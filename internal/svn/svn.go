// Package svn drives the system `svn` binary for working-copy status and
// commits.
package svn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var ErrSvnNotAvailable = errors.New("svn is not available on this system")

// ToolError is a non-zero exit from the svn binary, with its diagnostics.
type ToolError struct {
	Op       string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("svn %s failed (exit %d): %s", e.Op, e.ExitCode, e.Stderr)
}

// Client runs svn commands against one working copy.
type Client struct {
	// Root is the working-copy root all commands run in.
	Root string
}

func New(root string) *Client {
	return &Client{Root: root}
}

// Available checks if the "svn" executable can be found in the system's PATH.
func Available() bool {
	_, err := exec.LookPath("svn")
	return err == nil
}

// run executes svn with the given args in the working copy root. The child
// environment pins LC_ALL/LANG to a UTF-8 locale so svn does not reinterpret
// multi-byte arguments or file contents with an ambient locale.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "svn", args...)
	cmd.Dir = c.Root
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), "LC_ALL=C.UTF-8", "LANG=C.UTF-8")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &ToolError{
				Op:       args[0],
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return stdout.String(), fmt.Errorf("svn %s: %w", args[0], err)
	}

	return stdout.String(), nil
}
