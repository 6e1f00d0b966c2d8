package envsub

import (
	"fmt"
	"sort"

	"github.com/drone/envsubst"
)

// Lookup returns the value of a variable and whether it is set
type Lookup func(key string) (string, bool)

// Expand resolves ${var} references in a string. Unset variables expand to
// the empty string, which lets ${var:-default} fall back as it does in a
// shell.
func Expand(s string, lookup Lookup) (string, error) {
	return envsubst.Eval(s, func(key string) string {
		value, _ := lookup(key)
		return value
	})
}

// ExpandAll expands each named value in place. Names are processed in
// sorted order so the first error reported is deterministic.
func ExpandAll(values map[string]*string, lookup Lookup) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ptr := values[name]
		if ptr == nil {
			continue
		}
		result, err := Expand(*ptr, lookup)
		if err != nil {
			return fmt.Errorf("Invalid variable reference in %s: %w", name, err)
		}
		*ptr = result
	}
	return nil
}
