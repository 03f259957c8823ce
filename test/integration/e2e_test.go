//go:build integration

package integration_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shinh/cref/internal/compare"
	"github.com/shinh/cref/internal/report"
	"github.com/shinh/cref/internal/targets"
)

// setupDataDir writes a descriptor and macro listing for every fixed target.
// Pointer-sized types follow each target's pointer size.
func setupDataDir(t *testing.T) (string, []targets.Target) {
	t.Helper()
	dir := t.TempDir()
	ts, err := targets.All()
	if err != nil {
		t.Fatalf("targets.All: %v", err)
	}

	for _, tg := range ts {
		long := tg.PointerSize
		descriptor := fmt.Sprintf(`[
{"type": {
  "int": ["base", 4],
  "long int": ["base", %d],
  "intptr_t": ["typedef", "long int"],
  "caddr_t": ["typedef", "char*"],
  "_IO_FILE": ["struct", 148],
  "FILE": ["typedef", "_IO_FILE"]
 },
 "func": {"fopen": ["_IO_FILE*", "char*", "char*"]}
},
{"type": {
  "_IO_FILE": ["struct", %d],
  "DIR": ["struct", 0]
 }
}
]`, long, 100+long*10)
		writeFile(t, filepath.Join(dir, tg.ID+".json"), descriptor)
		writeFile(t, filepath.Join(dir, tg.ID+".txt"), fmt.Sprintf("#define __WORDSIZE %d\n#define EOF (-1)\n", long*8))
	}
	return dir, ts
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestSizeofReportEndToEnd(t *testing.T) {
	dir, ts := setupDataDir(t)

	tbl, err := compare.Sizeof(compare.Options{DataDir: dir, Targets: ts})
	if err != nil {
		t.Fatalf("Sizeof: %v", err)
	}

	var tsv bytes.Buffer
	if err := report.WriteTSV(&tsv, tbl); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(tsv.String(), "\n"), "\n")

	wantHeader := "sizeof(XXX)\t" + strings.Join(targets.IDs(ts), "\t")
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	wantRows := []string{
		"caddr_t\t8 (char*)\t4 (char*)\t4 (char*)\t4 (char*)\t4 (char*)",
		"DIR\t???\t???\t???\t???\t???",
		"FILE\t180 (_IO_FILE)\t148 (_IO_FILE)\t148 (_IO_FILE)\t148 (_IO_FILE)\t148 (_IO_FILE)",
		"int\t4 (basic)\t4 (basic)\t4 (basic)\t4 (basic)\t4 (basic)",
		"intptr_t\t8 (long int)\t4 (long int)\t4 (long int)\t4 (long int)\t4 (long int)",
		"long int\t8 (basic)\t4 (basic)\t4 (basic)\t4 (basic)\t4 (basic)",
		"_IO_FILE\t180 (struct)\t148 (struct)\t148 (struct)\t148 (struct)\t148 (struct)",
	}
	if got := lines[1:]; strings.Join(got, "\n") != strings.Join(wantRows, "\n") {
		t.Errorf("rows =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(wantRows, "\n"))
	}

	// The TSV must feed the HTML renderer unchanged.
	parsed, err := report.ReadTSV(&tsv)
	if err != nil {
		t.Fatalf("ReadTSV: %v", err)
	}
	var html bytes.Buffer
	if err := report.WriteHTML(&html, parsed); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if !strings.Contains(html.String(), "<tr><th>caddr_t<td>8 (char*)<td>4 (char*)") {
		t.Errorf("HTML missing caddr_t row:\n%s", html.String())
	}
}

func TestMacrosReportEndToEnd(t *testing.T) {
	dir, ts := setupDataDir(t)

	tbl, err := compare.Macros(compare.Options{DataDir: dir, Targets: ts})
	if err != nil {
		t.Fatalf("Macros: %v", err)
	}
	var out bytes.Buffer
	if err := report.WriteTSV(&out, tbl); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}
	if !strings.Contains(out.String(), "__WORDSIZE\t64\t32\t32\t32\t32\n") {
		t.Errorf("missing __WORDSIZE row:\n%s", out.String())
	}
}
