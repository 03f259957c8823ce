package typereg

// DefaultPointerType names the integer type whose size stands in for any
// pointer or array alias target.
const DefaultPointerType = "intptr_t"

// Table is the merged set of type records of one platform.
type Table struct {
	Platform    string
	PointerType string

	records map[string]Record
}

// NewTable returns an empty table for platform.
func NewTable(platform string) *Table {
	return &Table{
		Platform:    platform,
		PointerType: DefaultPointerType,
		records:     make(map[string]Record),
	}
}

// Lookup returns the record stored for name.
func (t *Table) Lookup(name string) (Record, bool) {
	r, ok := t.records[name]
	return r, ok
}

// Len returns the number of records in the table.
func (t *Table) Len() int { return len(t.records) }

// NameSet is a set of type names.
type NameSet map[string]struct{}

// Add inserts name into the set.
func (s NameSet) Add(name string) { s[name] = struct{}{} }

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Union adds every name of o to s.
func (s NameSet) Union(o NameSet) {
	for n := range o {
		s[n] = struct{}{}
	}
}

// Slice returns the names in unspecified order.
func (s NameSet) Slice() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	return out
}
