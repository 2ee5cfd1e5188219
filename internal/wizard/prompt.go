package wizard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"aidconnect/internal/ui"
)

// LinePrompter reads answers line by line, hiding secret fields when the
// input is a terminal.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewLinePrompter reads from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	p := &LinePrompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

// Step implements Prompter.
func (p *LinePrompter) Step(index, total int, title string) {
	ui.Titlef(p.out, "[%d/%d] %s", index+1, total, title)
	if index > 0 {
		ui.Hintf(p.out, "type %s to go back", BackCommand)
	}
}

// Ask implements Prompter.
func (p *LinePrompter) Ask(ctx context.Context, f Field, current string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt(f, current))

	if f.Secret && p.tty {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Problem implements Prompter.
func (p *LinePrompter) Problem(err error) {
	ui.Errorf(p.out, "%v", err)
}

func prompt(f Field, current string) string {
	var b strings.Builder
	b.WriteString(f.Label)
	if f.Label == "" {
		b.WriteString(f.Name)
	}
	var hints []string
	if len(f.Options) > 0 {
		hints = append(hints, strings.Join(f.Options, "|"))
	}
	if f.Help != "" {
		hints = append(hints, f.Help)
	}
	if f.Optional && current != "" {
		hints = append(hints, ClearCommand+" to clear")
	}
	if len(hints) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(hints, "; "))
	}
	if current != "" && !f.Secret {
		fmt.Fprintf(&b, " [%s]", current)
	}
	b.WriteString(": ")
	return b.String()
}
