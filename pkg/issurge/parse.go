package issurge

import (
	"fmt"
	"io"

	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/parser"
)

// StdinPath reads the feedback from standard input.
const StdinPath = "-"

// ParseOpts contains parameters for Parse.
type ParseOpts struct {
	// Path of the feedback file, or StdinPath.
	Path string
}

// Parse reads a feedback file and returns its issues.
func (i *realIssurge) Parse(opts ParseOpts) ([]issue.Issue, error) {
	raw, err := i.read(opts.Path)
	if err != nil {
		return nil, err
	}

	issues, err := parser.NewParser(i.deps.Logger).Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", opts.Path, err)
	}

	i.deps.Logger.Debugf("Parsed %d issue(s) from %s", len(issues), opts.Path)
	return issues, nil
}

func (i *realIssurge) read(path string) (string, error) {
	switch path {
	case "":
		return "", ErrNoInput
	case StdinPath:
		data, err := io.ReadAll(i.deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	expanded, err := i.deps.FS.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}

	data, err := i.deps.FS.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}
