// Package policy maps reconciliation advisories to a proceed-or-abort
// decision through a caller-supplied confirmation surface. It holds no
// reconciliation logic of its own.
package policy

import "fmt"

// Decision is the outcome for one advisory category.
type Decision int

const (
	Abort Decision = iota
	Proceed
)

// Category identifies an advisory class. Categories are decided in the order
// they are declared here: unincluded modifications first, then missing paths.
type Category int

const (
	UnincludedModifications Category = iota
	MissingPaths
)

func (c Category) String() string {
	switch c {
	case UnincludedModifications:
		return "unincluded-modifications"
	case MissingPaths:
		return "missing-paths"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Decider resolves one non-empty advisory category to a decision. An Abort
// from any category terminates the whole commit attempt.
type Decider interface {
	Decide(category Category, paths []string) (Decision, error)
}

// Confirmer is the single yes/no interaction surface the interactive policy
// renders prompts onto.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Interactive asks the confirmer per category, with the rendered prompt.
type Interactive struct {
	confirmer Confirmer
}

func NewInteractive(confirmer Confirmer) *Interactive {
	return &Interactive{confirmer: confirmer}
}

func (p *Interactive) Decide(category Category, paths []string) (Decision, error) {
	ok, err := p.confirmer.Confirm(PromptText(category, paths))
	if err != nil {
		return Abort, err
	}
	if !ok {
		return Abort, nil
	}
	return Proceed, nil
}

// AutoApprove proceeds past every advisory without asking. Used for --yes.
type AutoApprove struct{}

func (AutoApprove) Decide(Category, []string) (Decision, error) {
	return Proceed, nil
}

// PromptText renders the category-specific prompt. Singular and plural path
// lists differ only in grammar, never in the decision semantics.
func PromptText(category Category, paths []string) string {
	n := len(paths)

	var lead string
	switch category {
	case UnincludedModifications:
		if n == 1 {
			lead = "1 locally modified file is not part of this revision:"
		} else {
			lead = fmt.Sprintf("%d locally modified files are not part of this revision:", n)
		}
	case MissingPaths:
		if n == 1 {
			lead = "1 declared file does not exist in the working copy and will be skipped:"
		} else {
			lead = fmt.Sprintf("%d declared files do not exist in the working copy and will be skipped:", n)
		}
	}

	out := lead
	for _, p := range paths {
		out += "\n  " + p
	}
	return out + "\nContinue with the commit?"
}
