package submit

import (
	"slices"

	"github.com/lerenn/issurge/pkg/issue"
)

// ValidateReferences checks that every local reference of the batch points at
// a local number one of its issues declares.
func ValidateReferences(issues []issue.Issue) error {
	declared := make(map[int]struct{})
	for _, iss := range issues {
		if iss.LocalNumber != nil {
			declared[*iss.LocalNumber] = struct{}{}
		}
	}

	for _, iss := range issues {
		var numbers []int
		numbers = append(numbers, iss.DescriptionReferences()...)
		for _, ref := range iss.References() {
			if ref.IsLocal() {
				numbers = append(numbers, ref.Number())
			}
		}

		for _, n := range numbers {
			if _, ok := declared[n]; !ok {
				return &issue.UnresolvedReferenceError{Number: n}
			}
		}
	}

	return nil
}

// DuplicateLocalNumbers returns the sorted local numbers declared by more than one issue.
func DuplicateLocalNumbers(issues []issue.Issue) []int {
	seen := make(map[int]int)
	for _, iss := range issues {
		if iss.LocalNumber != nil {
			seen[*iss.LocalNumber]++
		}
	}

	var duplicates []int
	for n, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, n)
		}
	}
	slices.Sort(duplicates)
	return duplicates
}
