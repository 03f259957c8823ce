package typereg

import "strconv"

// Resolve returns the display form of name: "<size> (<descriptor>)", or
// Placeholder when the platform has no record for it.
//
// Typedefs are described by their recorded alias text and sized by following
// the alias chain.
func (t *Table) Resolve(name string) string {
	r, ok := t.records[name]
	if !ok {
		return Placeholder
	}
	switch r.Category {
	case CategoryBase:
		return strconv.Itoa(r.Size) + " (basic)"
	case CategoryStruct:
		return strconv.Itoa(r.Size) + " (struct)"
	default:
		size := Placeholder
		if n, ok := t.chainSize(name, r.Target); ok {
			size = strconv.Itoa(n)
		}
		return size + " (" + r.Target.Raw + ")"
	}
}

// chainSize follows a typedef chain starting at the alias of from. Pointer
// and array targets jump to the table's pointer type. A name visited twice
// ends the chain.
func (t *Table) chainSize(from string, target Target) (int, bool) {
	visited := map[string]bool{from: true}
	for {
		next := target.Name
		if target.Indirect {
			next = t.PointerType
		}
		if visited[next] {
			return 0, false
		}
		visited[next] = true

		r, ok := t.records[next]
		if !ok {
			return 0, false
		}
		if r.Sized() {
			return r.Size, true
		}
		target = r.Target
	}
}
