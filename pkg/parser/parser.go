package parser

import (
	"fmt"
	"strings"

	"github.com/lerenn/issurge/pkg/issue"
	"github.com/lerenn/issurge/pkg/logger"
	"github.com/lerenn/issurge/pkg/tree"
)

// CommentMarker starts a line that produces no issue.
const CommentMarker = "//"

// Parser interface turns feedback text into issues.
type Parser interface {
	// Parse builds the indentation tree of raw and resolves every top-level
	// node with an empty inherited issue, in input order.
	Parse(raw string) ([]issue.Issue, error)

	// Resolve expands one node into zero or more issues, inheriting the
	// attributes of inherited.
	Resolve(node tree.Node, inherited issue.Issue) ([]issue.Issue, error)
}

type realParser struct {
	logger logger.Logger
}

// NewParser creates a new Parser reporting its decisions to logger.
func NewParser(logger logger.Logger) Parser {
	return &realParser{logger: logger}
}

// Parse parses raw text without logging.
func Parse(raw string) ([]issue.Issue, error) {
	return NewParser(logger.NewNoopLogger()).Parse(raw)
}

// Parse builds the tree of raw and resolves its top-level nodes.
func (p *realParser) Parse(raw string) ([]issue.Issue, error) {
	nodes, err := tree.Build(raw)
	if err != nil {
		return nil, err
	}

	var issues []issue.Issue
	for _, node := range nodes {
		p.logger.Debugf("Processing %q", node.Text)
		resolved, err := p.resolve(node, issue.Issue{}, 0)
		if err != nil {
			return nil, err
		}
		issues = append(issues, resolved...)
	}

	return issues, nil
}

// Resolve expands node into issues.
func (p *realParser) Resolve(node tree.Node, inherited issue.Issue) ([]issue.Issue, error) {
	return p.resolve(node, inherited, 0)
}

func (p *realParser) resolve(node tree.Node, inherited issue.Issue, level int) ([]issue.Issue, error) {
	indent := strings.Repeat("  ", level)

	if strings.HasPrefix(strings.TrimSpace(node.Text), CommentMarker) {
		p.logger.Debugf("%sSkipping comment %q", indent, node.Text)
		return nil, nil
	}

	partial, expectsDescription := ParseFragment(node.Text)
	current := issue.Merge(inherited, partial)

	if expectsDescription {
		if node.IsLeaf() {
			return nil, fmt.Errorf("%w after %q", ErrMissingDescription, node.Text)
		}
		description := AbsorbDescription(tree.Tree(node.Children).Text())
		current = issue.Merge(current, description)
	}

	if current.Title != "" {
		p.logger.Debugf("%sMade %s", indent, current.Display())
		return []issue.Issue{current}, nil
	}

	if !expectsDescription && !node.IsLeaf() {
		p.logger.Debugf("%sMaking children from %s", indent, current.Display())

		var issues []issue.Issue
		for _, child := range node.Children {
			resolved, err := p.resolve(child, current, level+1)
			if err != nil {
				return nil, err
			}
			issues = append(issues, resolved...)
		}
		return issues, nil
	}

	p.logger.Logf("Warning: dropping %q, it has no title and no children", node.Text)
	return nil, nil
}
