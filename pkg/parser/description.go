package parser

import (
	"regexp"
	"strconv"

	"github.com/lerenn/issurge/pkg/issue"
)

var relationPattern = regexp.MustCompile(`([>^])(\.?)(\d+)`)

// AbsorbDescription extracts the parent and blockers written inside a
// description block and rewrites each of them as a #n or #.n token.
func AbsorbDescription(text string) issue.Issue {
	var (
		parent   *issue.Reference
		blockers []issue.Reference
	)

	description := relationPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := relationPattern.FindStringSubmatch(match)
		n, err := strconv.Atoi(groups[3])
		if err != nil {
			return match
		}

		ref := issue.DirectRef(n)
		if groups[2] == "." {
			ref = issue.LocalRef(n)
		}

		if groups[1] == ">" {
			blockers = append(blockers, ref)
		} else {
			parent = issue.RefPtr(ref)
		}

		return ref.String()
	})

	return issue.Issue{
		Description: description,
		Parent:      parent,
		BlockedBy:   issue.UnionReferences(nil, blockers),
	}
}
