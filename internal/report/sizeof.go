package report

import "github.com/shinh/cref/internal/typereg"

// SizeofTitle heads the type size report.
const SizeofTitle = "sizeof(XXX)"

// Sizeof builds the type size comparison: one column per table, one row per
// name, each cell resolved against that column's table.
func Sizeof(tables []*typereg.Table, names typereg.NameSet) *Table {
	t := &Table{Title: SizeofTitle}
	for _, tbl := range tables {
		t.Columns = append(t.Columns, tbl.Platform)
	}

	sorted := names.Slice()
	SortNames(sorted)
	for _, name := range sorted {
		cells := make([]string, len(tables))
		for i, tbl := range tables {
			cells[i] = tbl.Resolve(name)
		}
		t.AddRow(name, cells...)
	}
	return t
}
