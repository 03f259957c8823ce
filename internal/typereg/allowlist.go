package typereg

import "sort"

// DefaultAllowList holds the types known to differ between compilation units
// of the same libc build (file handle internals and a few private structs).
var DefaultAllowList = NewAllowList(
	"_IO_FILE",
	"_IO_FILE_plus",
	"helper_file",
	"locked_FILE",
	"group",
	"area",
	"ct_data",
	"known_object",
	Placeholder,
)

// AllowList is the set of type names whose records may disagree within one
// platform. Disagreeing sizes are merged by taking the maximum.
type AllowList map[string]struct{}

// NewAllowList returns an allow-list containing names.
func NewAllowList(names ...string) AllowList {
	a := make(AllowList, len(names))
	for _, n := range names {
		a[n] = struct{}{}
	}
	return a
}

// Contains reports whether name is allow-listed.
func (a AllowList) Contains(name string) bool {
	_, ok := a[name]
	return ok
}

// With returns a copy of a extended by names. a is not modified.
func (a AllowList) With(names ...string) AllowList {
	out := make(AllowList, len(a)+len(names))
	for n := range a {
		out[n] = struct{}{}
	}
	for _, n := range names {
		if n != "" {
			out[n] = struct{}{}
		}
	}
	return out
}

// Names returns the allow-listed names in sorted order.
func (a AllowList) Names() []string {
	names := make([]string, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
