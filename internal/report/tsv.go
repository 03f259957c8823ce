package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyInput is returned by ReadTSV when there is no header line.
var ErrEmptyInput = errors.New("empty TSV input")

// WriteTSV writes the header line followed by one line per row. Fields are
// separated by tabs.
func WriteTSV(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	writeLine(bw, t.Title, t.Columns)
	for _, r := range t.Rows {
		writeLine(bw, r.Name, r.Cells)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing TSV: %w", err)
	}
	return nil
}

func writeLine(w *bufio.Writer, first string, rest []string) {
	w.WriteString(first)
	for _, f := range rest {
		w.WriteByte('\t')
		w.WriteString(f)
	}
	w.WriteByte('\n')
}

// ReadTSV parses the format written by WriteTSV. Blank lines are skipped.
func ReadTSV(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var t *Table
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if t == nil {
			t = &Table{Title: fields[0], Columns: fields[1:]}
			continue
		}
		t.AddRow(fields[0], fields[1:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading TSV: %w", err)
	}
	if t == nil {
		return nil, ErrEmptyInput
	}
	return t, nil
}
