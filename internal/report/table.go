package report

// Table is a comparison table: a title, one column per target, and one row
// per compared symbol.
type Table struct {
	Title   string
	Columns []string
	Rows    []Row
}

// Row is one symbol and its per-column values.
type Row struct {
	Name  string
	Cells []string
}

// AddRow appends a row.
func (t *Table) AddRow(name string, cells ...string) {
	t.Rows = append(t.Rows, Row{Name: name, Cells: cells})
}
