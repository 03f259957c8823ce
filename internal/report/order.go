package report

import (
	"sort"

	"github.com/shinh/cref/internal/typereg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SortNames orders names case-insensitively, falling back to byte order for
// names that fold equal. A type literally named "???" sorts last.
func SortNames(names []string) {
	upper := cases.Upper(language.Und)
	keys := make(map[string]string, len(names))
	for _, n := range names {
		keys[n] = upper.String(n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := names[i], names[j]
		if (a == typereg.Placeholder) != (b == typereg.Placeholder) {
			return b == typereg.Placeholder
		}
		if keys[a] != keys[b] {
			return keys[a] < keys[b]
		}
		return a < b
	})
}
