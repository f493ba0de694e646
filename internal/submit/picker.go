package submit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reviewlab/landr/internal/reviewsdk"
)

// TTYPicker lets the operator choose among several committable revisions with
// a numbered prompt.
type TTYPicker struct {
	In  io.Reader
	Out io.Writer
}

func (p *TTYPicker) Pick(revisions []reviewsdk.RevisionRef) (string, error) {
	fmt.Fprintln(p.Out, "Committable revisions:")
	for i, rev := range revisions {
		fmt.Fprintf(p.Out, "  %d) %s  %s\n", i+1, rev.ID, rev.Title)
	}
	fmt.Fprintf(p.Out, "Which revision to commit? [1-%d] ", len(revisions))

	answer, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && answer == "" {
		return "", err
	}

	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(revisions) {
		return "", &UsageError{
			Msg:  fmt.Sprintf("invalid choice %q", strings.TrimSpace(answer)),
			Hint: "pass an explicit revision id",
		}
	}

	return revisions[n-1].ID, nil
}
