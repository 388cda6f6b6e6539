package terminal

import (
	"fmt"
	"os"

	"overlay/internal/ports"

	"golang.org/x/term"
)

var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads secrets from stdin. Prompts go to stderr so that
// stdout only ever carries command output.
type TerminalInput struct {
	in  *os.File
	out *os.File
}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{in: os.Stdin, out: os.Stderr}
}

func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	password, err := term.ReadPassword(int(t.in.Fd()))
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}
