package issue

import (
	"cmp"
	"slices"
)

// Me is the assignee placeholder for the invoking user.
const Me = "me"

// Issue represents one issue of a batch, before or after submission.
//
// Labels, Assignees and BlockedBy are sets kept as sorted slices without
// duplicates; an empty set is nil. Issues are values: every transformation
// returns a new Issue and never modifies the slices of its inputs.
type Issue struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description,omitempty"`
	Labels      []string    `yaml:"labels,omitempty"`
	Assignees   []string    `yaml:"assignees,omitempty"`
	Milestone   string      `yaml:"milestone,omitempty"`
	LocalNumber *int        `yaml:"local_number,omitempty"`
	Parent      *Reference  `yaml:"parent,omitempty"`
	BlockedBy   []Reference `yaml:"blocked_by,omitempty"`
}

// Merge combines base with override: scalar fields come from override when
// set there, set fields are unioned.
func Merge(base, override Issue) Issue {
	merged := Issue{
		Title:       base.Title,
		Description: base.Description,
		Labels:      UnionStrings(base.Labels, override.Labels),
		Assignees:   UnionStrings(base.Assignees, override.Assignees),
		Milestone:   base.Milestone,
		LocalNumber: base.LocalNumber,
		Parent:      base.Parent,
		BlockedBy:   UnionReferences(base.BlockedBy, override.BlockedBy),
	}

	if override.Title != "" {
		merged.Title = override.Title
	}
	if override.Description != "" {
		merged.Description = override.Description
	}
	if override.Milestone != "" {
		merged.Milestone = override.Milestone
	}
	if override.LocalNumber != nil {
		merged.LocalNumber = override.LocalNumber
	}
	if override.Parent != nil {
		merged.Parent = override.Parent
	}

	return merged
}

// IsZero reports whether the issue carries no data at all.
func (i Issue) IsZero() bool {
	return i.Title == "" && i.Description == "" && len(i.Labels) == 0 &&
		len(i.Assignees) == 0 && i.Milestone == "" && i.LocalNumber == nil &&
		i.Parent == nil && len(i.BlockedBy) == 0
}

// References returns every reference of the issue: its parent first, then its blockers.
func (i Issue) References() []Reference {
	var refs []Reference
	if i.Parent != nil {
		refs = append(refs, *i.Parent)
	}
	return append(refs, i.BlockedBy...)
}

// UnionStrings returns the sorted union of a and b, or nil when both are empty.
func UnionStrings(a, b []string) []string {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// UnionReferences returns the sorted union of a and b, or nil when both are empty.
func UnionReferences(a, b []Reference) []Reference {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]Reference, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.SortFunc(out, compareReferences)
	return slices.Compact(out)
}

func compareReferences(a, b Reference) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return cmp.Compare(a.number, b.number)
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}

// RefPtr returns a pointer to r.
func RefPtr(r Reference) *Reference {
	return &r
}
