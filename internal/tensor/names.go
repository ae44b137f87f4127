package tensor

import (
	"fmt"

	"go.uber.org/multierr"
)

// Names holds one optional label per axis. The empty string marks an
// unnamed axis.
type Names []string

// Unnamed returns rank empty labels.
func Unnamed(rank int) Names {
	return make(Names, rank)
}

// Index returns the position of name, or false when no axis carries it.
// Empty names never match.
func (n Names) Index(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i, label := range n {
		if label == name {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a copy of the names.
func (n Names) Clone() Names {
	clone := make(Names, len(n))
	copy(clone, n)
	return clone
}

// Equal checks if two name lists are equal.
func (n Names) Equal(other Names) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if n[i] != other[i] {
			return false
		}
	}
	return true
}

// Without returns a copy of the names with the given axes removed.
func (n Names) Without(axes ...int) Names {
	drop := make(map[int]bool, len(axes))
	for _, ax := range axes {
		drop[ax] = true
	}
	out := make(Names, 0, len(n))
	for i, label := range n {
		if !drop[i] {
			out = append(out, label)
		}
	}
	return out
}

// Validate reports every repeated label. It does not know the rank.
func (n Names) Validate() error {
	var errs error
	seen := make(map[string]int, len(n))
	for i, label := range n {
		if label == "" {
			continue
		}
		if prev, ok := seen[label]; ok {
			errs = multierr.Append(errs, fmt.Errorf("axis name %q used by axes %d and %d", label, prev, i))
			continue
		}
		seen[label] = i
	}
	return errs
}

// String formats the names as a tuple, printing unnamed axes as nil.
func (n Names) String() string {
	return tupleString(len(n), func(i int) string {
		if n[i] == "" {
			return "nil"
		}
		return ":" + n[i]
	})
}
