package issue

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells whether a reference points at a real tracker issue or at an issue of the current batch.
type Kind int

const (
	// Direct references use a real, already-known tracker issue number.
	Direct Kind = iota
	// Local references use a provisional number scoped to the current batch.
	Local
)

// Reference points at another issue. The zero value is Direct(0).
type Reference struct {
	kind   Kind
	number int
}

// DirectRef returns a reference to the tracker issue n.
func DirectRef(n int) Reference {
	return Reference{kind: Direct, number: n}
}

// LocalRef returns a reference to the batch issue declared with #.n.
func LocalRef(n int) Reference {
	return Reference{kind: Local, number: n}
}

// Kind returns the reference kind.
func (r Reference) Kind() Kind {
	return r.kind
}

// Number returns the referenced number, either real or local depending on Kind.
func (r Reference) Number() int {
	return r.number
}

// IsLocal reports whether the reference still needs resolution.
func (r Reference) IsLocal() bool {
	return r.kind == Local
}

// String renders the reference token: #n for direct references, #.n for local ones.
func (r Reference) String() string {
	if r.kind == Local {
		return fmt.Sprintf("#.%d", r.number)
	}
	return fmt.Sprintf("#%d", r.number)
}

// ParseReference parses a #n or #.n token.
func ParseReference(token string) (Reference, error) {
	rest, ok := strings.CutPrefix(token, "#")
	if !ok {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, token)
	}

	kind := Direct
	if r, local := strings.CutPrefix(rest, "."); local {
		kind = Local
		rest = r
	}

	if !isDigits(rest) {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, token)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q", ErrInvalidReference, token)
	}

	return Reference{kind: kind, number: n}, nil
}

// MarshalYAML renders the reference as its token.
func (r Reference) MarshalYAML() (interface{}, error) {
	return r.String(), nil
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
