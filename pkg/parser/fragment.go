package parser

import (
	"strconv"
	"strings"

	"github.com/lerenn/issurge/pkg/issue"
)

type sigil int

const (
	sigilNone sigil = iota
	sigilLocalNumber
	sigilLocalParent
	sigilDirectParent
	sigilLocalBlocker
	sigilDirectBlocker
	sigilLabel
	sigilMilestone
	sigilAssignee
)

// word is one token of a fragment, split into its sigil and bare value.
type word struct {
	sigil  sigil
	value  string
	number int
}

// numericPrefixes are checked in order, longest first.
var numericPrefixes = []struct {
	prefix string
	sigil  sigil
}{
	{"#.", sigilLocalNumber},
	{"^.", sigilLocalParent},
	{"^", sigilDirectParent},
	{">.", sigilLocalBlocker},
	{">", sigilDirectBlocker},
}

var textPrefixes = []struct {
	prefix string
	sigil  sigil
}{
	{"~", sigilLabel},
	{"%", sigilMilestone},
	{"@", sigilAssignee},
}

func classify(raw string) word {
	for _, p := range numericPrefixes {
		rest, ok := strings.CutPrefix(raw, p.prefix)
		if !ok || !isDigits(rest) {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		return word{sigil: p.sigil, value: rest, number: n}
	}

	for _, p := range textPrefixes {
		if rest, ok := strings.CutPrefix(raw, p.prefix); ok && rest != "" {
			return word{sigil: p.sigil, value: rest}
		}
	}

	return word{sigil: sigilNone, value: raw}
}

// ParseFragment parses one line into the attributes it declares. The boolean
// is true when the line ends with ':' and expects a description block.
//
// Sigil words (~label, @assignee, %milestone, ^parent, >blocker, #.local)
// also count as title words, without their sigil, when they sit between two
// plain words.
func ParseFragment(line string) (issue.Issue, bool) {
	line = strings.TrimSpace(line)
	expectsDescription := false
	if strings.HasSuffix(line, ":") {
		expectsDescription = true
		line = strings.TrimSpace(strings.TrimSuffix(line, ":"))
	}

	var words []word
	for _, raw := range strings.Split(line, " ") {
		if raw = strings.TrimSpace(raw); raw != "" {
			words = append(words, classify(raw))
		}
	}

	// plainAfter[i] is the number of plain words in words[i:].
	plainAfter := make([]int, len(words)+1)
	for i := len(words) - 1; i >= 0; i-- {
		plainAfter[i] = plainAfter[i+1]
		if words[i].sigil == sigilNone {
			plainAfter[i]++
		}
	}

	var (
		result   issue.Issue
		title    []string
		labels   []string
		assign   []string
		blockers []issue.Reference
		sawPlain bool
	)

	for i, w := range words {
		if w.sigil == sigilNone {
			title = append(title, w.value)
			sawPlain = true
			continue
		}

		if sawPlain && plainAfter[i+1] > 0 {
			title = append(title, w.value)
		}

		switch w.sigil {
		case sigilLocalNumber:
			result.LocalNumber = issue.IntPtr(w.number)
		case sigilLocalParent:
			result.Parent = issue.RefPtr(issue.LocalRef(w.number))
		case sigilDirectParent:
			result.Parent = issue.RefPtr(issue.DirectRef(w.number))
		case sigilLocalBlocker:
			blockers = append(blockers, issue.LocalRef(w.number))
		case sigilDirectBlocker:
			blockers = append(blockers, issue.DirectRef(w.number))
		case sigilLabel:
			labels = append(labels, w.value)
		case sigilMilestone:
			result.Milestone = w.value
		case sigilAssignee:
			assign = append(assign, w.value)
		}
	}

	result.Title = strings.TrimSpace(strings.Join(title, " "))
	result.Labels = issue.UnionStrings(nil, labels)
	result.Assignees = issue.UnionStrings(nil, assign)
	result.BlockedBy = issue.UnionReferences(nil, blockers)

	return result, expectsDescription
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
