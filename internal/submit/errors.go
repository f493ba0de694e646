package submit

import (
	"fmt"

	"github.com/reviewlab/landr/internal/policy"
)

// UsageError is operator error: wrong revision id, nothing committable, or a
// broken environment. Never retried; carries a remediation hint.
type UsageError struct {
	Msg  string
	Hint string
}

func (e *UsageError) Error() string {
	if e.Hint == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s (%s)", e.Msg, e.Hint)
}

// AbortError is the operator declining to proceed past an advisory. A
// deliberate exit, not a defect; nothing was mutated.
type AbortError struct {
	Category policy.Category
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("commit aborted on %s warning", e.Category)
}
