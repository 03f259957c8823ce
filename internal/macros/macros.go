// Package macros compares preprocessor macro values across targets.
//
// Each target contributes a listing of "#define NAME VALUE" lines, typically
// produced with `cpp -dM`. Any other line aborts the comparison.
package macros

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/shinh/cref/internal/report"
	"github.com/shinh/cref/internal/typereg"
)

// Title heads the macro report.
const Title = "C macros"

// Ext is the file extension of macro listings.
const Ext = ".txt"

var defineRe = regexp.MustCompile(`^#define (\S+) (.*)$`)

// MalformedLineError reports a listing line that is not a macro definition.
type MalformedLineError struct {
	File string
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: malformed macro line: %q", e.File, e.Line, e.Text)
}

// Parse reads a macro listing. source names the input in errors. A macro
// defined twice keeps its last value.
func Parse(r io.Reader, source string) (map[string]string, error) {
	values := make(map[string]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		m := defineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, &MalformedLineError{File: source, Line: n, Text: line}
		}
		values[m[1]] = m[2]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return values, nil
}

// ReadFile parses the listing at path.
func ReadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening macro listing: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Load reads <dir>/<target>.txt.
func Load(dir, target string) (map[string]string, error) {
	return ReadFile(filepath.Join(dir, target+Ext))
}

// Compare builds the macro table. Rows are the macros defined by the first
// target in byte order; targets lacking a macro show the placeholder.
// listings must be parallel to targets.
func Compare(targets []string, listings []map[string]string) *report.Table {
	t := &report.Table{Title: Title, Columns: append([]string(nil), targets...)}
	if len(listings) == 0 {
		return t
	}

	names := make([]string, 0, len(listings[0]))
	for n := range listings[0] {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, name := range names {
		cells := make([]string, len(listings))
		for i, l := range listings {
			v, ok := l[name]
			if !ok {
				v = typereg.Placeholder
			}
			cells[i] = v
		}
		t.AddRow(name, cells...)
	}
	return t
}
