package issue

import (
	"regexp"
	"slices"
	"strconv"
)

var localTokenPattern = regexp.MustCompile(`#\.(\d+)`)

// DescriptionReferences returns the sorted local numbers mentioned as #.n in the description.
func (i Issue) DescriptionReferences() []int {
	var numbers []int
	for _, match := range localTokenPattern.FindAllStringSubmatch(i.Description, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return slices.Compact(numbers)
}

// ResolveReferences replaces local references with the tracker numbers of resolution.
//
// Description tokens #.n become #m, the parent and blockers become Direct
// references. In strict mode the first local number missing from resolution
// fails with an *UnresolvedReferenceError. Otherwise unresolved parent and
// blockers are dropped while unresolved description tokens are kept as-is.
func (i Issue) ResolveReferences(resolution map[int]int, strict bool) (Issue, error) {
	resolved := i

	var unresolved error
	resolved.Description = localTokenPattern.ReplaceAllStringFunc(i.Description, func(token string) string {
		n, err := strconv.Atoi(token[2:])
		if err != nil {
			return token
		}
		number, ok := resolution[n]
		if !ok {
			if unresolved == nil {
				unresolved = &UnresolvedReferenceError{Number: n}
			}
			return token
		}
		return DirectRef(number).String()
	})
	if strict && unresolved != nil {
		return Issue{}, unresolved
	}

	if i.Parent != nil {
		parent, ok, err := resolveReference(*i.Parent, resolution, strict)
		if err != nil {
			return Issue{}, err
		}
		resolved.Parent = nil
		if ok {
			resolved.Parent = RefPtr(parent)
		}
	}

	var blockers []Reference
	for _, ref := range i.BlockedBy {
		blocker, ok, err := resolveReference(ref, resolution, strict)
		if err != nil {
			return Issue{}, err
		}
		if ok {
			blockers = append(blockers, blocker)
		}
	}
	resolved.BlockedBy = UnionReferences(nil, blockers)

	return resolved, nil
}

func resolveReference(ref Reference, resolution map[int]int, strict bool) (Reference, bool, error) {
	if !ref.IsLocal() {
		return ref, true, nil
	}
	number, ok := resolution[ref.Number()]
	if ok {
		return DirectRef(number), true, nil
	}
	if strict {
		return Reference{}, false, &UnresolvedReferenceError{Number: ref.Number()}
	}
	return Reference{}, false, nil
}
