package tree

import (
	"fmt"
	"strings"
)

// IndentUnit is the indentation character used when rendering a tree back to text.
const IndentUnit = "\t"

// Node is one non-blank line of the input with the lines nested beneath it.
type Node struct {
	// Text is the trimmed line.
	Text string
	// Depth is the number of leading indentation characters of the line.
	Depth int
	// Children all share one depth, strictly greater than Depth.
	Children []Node
}

// Tree is an ordered sequence of sibling nodes. Identical sibling lines are
// kept as distinct entries.
type Tree []Node

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

type line struct {
	number int
	depth  int
	text   string
}

// Build parses raw text into a tree. Blank lines are discarded.
//
// A file indents with a single character: the first indented line picks
// tabs or spaces, and any line using the other one fails with
// ErrMixedIndentation.
func Build(raw string) (Tree, error) {
	lines, err := splitLines(raw)
	if err != nil {
		return nil, err
	}

	nodes, _ := consume(lines, 0, -1)
	return nodes, nil
}

func splitLines(raw string) ([]line, error) {
	var (
		lines  []line
		indent rune
	)

	for idx, text := range strings.Split(raw, "\n") {
		text = strings.TrimRight(text, " \t\r")
		if text == "" {
			continue
		}

		trimmed := strings.TrimLeft(text, " \t")
		leading := text[:len(text)-len(trimmed)]
		for _, c := range leading {
			if indent == 0 {
				indent = c
			}
			if c != indent {
				return nil, fmt.Errorf("%w: line %d", ErrMixedIndentation, idx+1)
			}
		}

		lines = append(lines, line{number: idx + 1, depth: len(leading), text: trimmed})
	}

	return lines, nil
}

// consume takes the children of a node at parentDepth from lines[pos:] and
// returns them with the position of the first line that belongs to an ancestor.
func consume(lines []line, pos, parentDepth int) ([]Node, int) {
	if pos >= len(lines) {
		return nil, pos
	}

	var nodes []Node
	childDepth := lines[pos].depth

	for pos < len(lines) {
		current := lines[pos]
		switch {
		case current.depth <= parentDepth:
			return nodes, pos
		case current.depth == childDepth:
			nodes = append(nodes, Node{Text: current.text, Depth: current.depth})
			pos++
		case current.depth > childDepth:
			var children []Node
			children, pos = consume(lines, pos, childDepth)
			last := &nodes[len(nodes)-1]
			last.Children = append(last.Children, children...)
		default:
			// Dedent that lands between the parent and its children: the
			// line still belongs to this parent and becomes the new child level.
			childDepth = current.depth
		}
	}

	return nodes, pos
}

// Text renders the tree back to lines indented with IndentUnit, one level per
// nesting level. Every line, the last included, ends with a newline.
func (t Tree) Text() string {
	var b strings.Builder
	writeText(&b, t, 0)
	return b.String()
}

func writeText(b *strings.Builder, nodes []Node, level int) {
	for _, node := range nodes {
		b.WriteString(strings.Repeat(IndentUnit, level))
		b.WriteString(node.Text)
		b.WriteString("\n")
		writeText(b, node.Children, level+1)
	}
}
