package policy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// TTYConfirmer asks a yes/no question on the terminal. The default answer is
// no, and a non-interactive stdin answers no without blocking, so a scripted
// run can never accidentally proceed past a warning.
type TTYConfirmer struct {
	In  io.Reader
	Out io.Writer

	// Interactive overrides TTY detection; used by tests.
	Interactive bool
}

func NewTTYConfirmer() *TTYConfirmer {
	return &TTYConfirmer{
		In:          os.Stdin,
		Out:         os.Stderr,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()),
	}
}

func (c *TTYConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s %s ", warnStyle.Render(prompt), "[y/N]")

	if !c.Interactive {
		fmt.Fprintln(c.Out, "no (stdin is not a terminal)")
		return false, nil
	}

	answer, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && answer == "" {
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
