package typereg

import (
	"sort"

	"github.com/charmbracelet/log"
)

// Unit is the type map of one compilation unit.
type Unit map[string]Record

// Platform is the ordered list of compilation units recorded for one target.
type Platform struct {
	ID    string
	Units []Unit
}

// Loader folds compilation units into per-platform tables.
type Loader struct {
	// AllowList names the types tolerated to disagree. Nil means DefaultAllowList.
	AllowList AllowList
	// PointerType is set on every loaded table. Empty means DefaultPointerType.
	PointerType string
}

// Load merges the units of one platform in order. It returns the merged table
// and every type name the units mention, opaque structs included.
func (l *Loader) Load(platform string, units []Unit) (*Table, NameSet, error) {
	t := NewTable(platform)
	if l.PointerType != "" {
		t.PointerType = l.PointerType
	}
	seen := make(NameSet)

	for i, unit := range units {
		log.Debugf("%s: merging unit %d (%d types)", platform, i, len(unit))
		for _, name := range sortedNames(unit) {
			seen.Add(name)
			if err := l.merge(t, name, unit[name]); err != nil {
				return nil, nil, err
			}
		}
	}
	log.Debugf("%s: %d types from %d units", platform, t.Len(), len(units))
	return t, seen, nil
}

// LoadAll loads every platform independently. Tables are returned in input
// order together with the union of all names seen.
func (l *Loader) LoadAll(platforms []Platform) ([]*Table, NameSet, error) {
	tables := make([]*Table, 0, len(platforms))
	all := make(NameSet)
	for _, p := range platforms {
		t, names, err := l.Load(p.ID, p.Units)
		if err != nil {
			return nil, nil, err
		}
		tables = append(tables, t)
		all.Union(names)
	}
	return tables, all, nil
}

func (l *Loader) allowList() AllowList {
	if l.AllowList == nil {
		return DefaultAllowList
	}
	return l.AllowList
}

func (l *Loader) merge(t *Table, name string, in Record) error {
	if in.Opaque() {
		return nil
	}

	stored, ok := t.records[name]
	if !ok {
		t.records[name] = in
		return nil
	}
	if stored.Equal(in) {
		return nil
	}

	if l.allowList().Contains(name) && stored.Sized() && in.Sized() {
		if stored.Category != in.Category {
			log.Warnf("%s: %s recorded as both %s and %s, keeping %s", t.Platform, name, stored.Category, in.Category, stored.Category)
		}
		stored.Size = max(stored.Size, in.Size)
		t.records[name] = stored
		return nil
	}

	return &MergeConflictError{
		Platform: t.Platform,
		Name:     name,
		Stored:   stored,
		Incoming: in,
	}
}

func sortedNames(u Unit) []string {
	names := make([]string, 0, len(u))
	for n := range u {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
