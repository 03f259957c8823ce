package cli

import (
	"fmt"
	"io"

	"github.com/shinh/cref/internal/report"
)

// writeTable writes t to w as TSV, or as HTML when asHTML is set.
func writeTable(w io.Writer, t *report.Table, asHTML bool) error {
	if asHTML {
		return report.WriteHTML(w, t)
	}
	if err := report.WriteTSV(w, t); err != nil {
		return fmt.Errorf("writing %s table: %w", t.Title, err)
	}
	return nil
}
