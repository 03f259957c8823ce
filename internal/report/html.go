package report

import (
	"fmt"
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("table").Parse(`<h1>{{.Title}}</h1>
<table border=1>
<th>{{range .Columns}}<td>{{.}}{{end}}</th>
{{range .Rows}}<tr><th>{{.Name}}{{range .Cells}}<td>{{.}}{{end}}</tr>
{{end}}</table>
`))

// WriteHTML renders t as an HTML fragment. All text is escaped.
func WriteHTML(w io.Writer, t *Table) error {
	if err := htmlTemplate.Execute(w, t); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}
