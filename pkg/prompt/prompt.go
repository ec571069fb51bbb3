// Package prompt implements interactive, validated terminal prompts.
//
// A prompt reads one line of input, substitutes a default when the response
// is empty, and re-asks until the field's validator accepts. The retry loop
// is intentionally unbounded: it blocks on a human, and cancellation is the
// human interrupting the process.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/Luna-Klatzer/pybootstrap/pkg/errors"
	"github.com/Luna-Klatzer/pybootstrap/pkg/logging"
)

// Field describes a single value to collect
type Field struct {
	Title    string
	Default  string
	Validate Validator
}

// Prompter collects one field at a time
type Prompter interface {
	Prompt(f Field) (string, error)
}

// New returns a huh-backed prompter when stdin is a terminal and a plain
// line-reader otherwise (piped input, tests)
func New() Prompter {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return &TerminalPrompter{}
	}
	return NewReaderPrompter(os.Stdin, os.Stderr)
}

// TerminalPrompter renders prompts as huh forms
type TerminalPrompter struct{}

// Prompt asks for one field; huh handles the re-ask-on-rejection loop
func (p *TerminalPrompter) Prompt(f Field) (string, error) {
	value := f.Default

	input := huh.NewInput().
		Title(f.Title).
		Value(&value)

	if f.Validate != nil {
		input = input.Validate(func(s string) error {
			if s == "" {
				s = f.Default
			}
			return f.Validate(s)
		})
	}

	form := huh.NewForm(huh.NewGroup(input)).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return "", errors.Wrap(err, errors.ErrPromptAborted, "prompt aborted")
		}
		return "", errors.Wrap(err, errors.ErrPromptRead, "prompt failed")
	}

	if value == "" {
		value = f.Default
	}
	return value, nil
}

// ReaderPrompter reads responses line by line from r, echoing prompts and
// rejection messages to w
type ReaderPrompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewReaderPrompter creates a line-reader prompter
func NewReaderPrompter(r io.Reader, w io.Writer) *ReaderPrompter {
	return &ReaderPrompter{
		scanner: bufio.NewScanner(r),
		w:       w,
	}
}

// Prompt asks for one field, re-asking until the validator accepts.
// The loop has no retry limit.
func (p *ReaderPrompter) Prompt(f Field) (string, error) {
	logger := logging.GetLogger("prompt")

	for {
		if f.Default != "" {
			fmt.Fprintf(p.w, "%s [%s]: ", f.Title, f.Default)
		} else {
			fmt.Fprintf(p.w, "%s: ", f.Title)
		}

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", errors.Wrap(err, errors.ErrPromptRead, "reading prompt response")
			}
			return "", errors.New(errors.ErrPromptRead, "input closed before a response was read")
		}

		response := p.scanner.Text()
		if response == "" {
			response = f.Default
		}

		if f.Validate == nil {
			return response, nil
		}
		err := f.Validate(response)
		if err == nil {
			return response, nil
		}

		logger.Debug().Str("field", f.Title).Str("response", response).Err(err).Msg("Rejected prompt response")
		fmt.Fprintf(p.w, "%v\n", err)
	}
}
