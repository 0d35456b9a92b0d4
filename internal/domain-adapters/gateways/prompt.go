package gateways

import (
	"bufio"
	"fmt"
	"io"
)

// Prompter blocks until the user acknowledges the end of a run. This is the
// only place the tool reads from standard input.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// WaitForUser prints the prompt and blocks until a line (or EOF) arrives
func (p *Prompter) WaitForUser() {
	fmt.Fprint(p.out, "Press Enter to continue...")
	reader := bufio.NewReader(p.in)
	_, _ = reader.ReadString('\n')
	fmt.Fprintln(p.out)
}
