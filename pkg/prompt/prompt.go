package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// DescriptionTerminator is the number of consecutive empty lines ending a description.
const DescriptionTerminator = 2

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForDescription reads a multi-line description until two empty lines in a row.
	PromptForDescription() (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelect prompts the user to pick one of the choices, current being preselected.
	PromptSelect(title string, choices []string, current string) (string, error)
}

type realPrompt struct {
	reader      *bufio.Reader
	in          io.Reader
	out         io.Writer
	interactive bool
}

// NewPrompt creates a new Prompt instance reading from stdin.
func NewPrompt() Prompter {
	fd := os.Stdin.Fd()
	return NewPromptWithIO(os.Stdin, os.Stderr, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewPromptWithIO creates a Prompt on arbitrary streams.
// Hints and the selection UI are only shown when interactive is true.
func NewPromptWithIO(in io.Reader, out io.Writer, interactive bool) Prompter {
	return &realPrompt{
		reader:      bufio.NewReader(in),
		in:          in,
		out:         out,
		interactive: interactive,
	}
}

// PromptForDescription reads a multi-line description until two empty lines in a row.
func (p *realPrompt) PromptForDescription() (string, error) {
	p.hint("Please enter a description for the issue (submit %d empty lines to finish):\n", DescriptionTerminator)

	var lines []string
	empty := 0
	for empty < DescriptionTerminator {
		p.hint("> ")

		line, err := p.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read user input: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			empty++
		} else {
			empty = 0
		}
		lines = append(lines, line)

		if errors.Is(err, io.EOF) {
			break
		}
	}

	description := strings.TrimSpace(strings.Join(lines, "\n"))
	if description == "" {
		return "", ErrEmptyDescription
	}

	return description, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelect prompts the user to pick one of the choices, current being preselected.
func (p *realPrompt) PromptSelect(title string, choices []string, current string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	if p.interactive {
		return runSelect(title, choices, current, p.in, p.out)
	}

	// Without a terminal, read the choice as a plain line
	fmt.Fprintf(p.out, "%s (%s) [default: %s]: ", title, strings.Join(choices, ", "), current)

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return current, nil
	}

	for _, choice := range choices {
		if strings.EqualFold(choice, input) {
			return choice, nil
		}
	}

	return "", fmt.Errorf("%w: %q is not one of %s", ErrNoSelection, input, strings.Join(choices, ", "))
}

func (p *realPrompt) hint(format string, args ...any) {
	if p.interactive {
		fmt.Fprintf(p.out, format, args...)
	}
}
