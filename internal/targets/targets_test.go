package targets

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

var fixedIDs = []string{
	"libc-2.18-x64",
	"libc-2.18-i686",
	"libc-2.17-x32",
	"libc-2.9-nacl-x64",
	"libc-2.9-nacl-i686",
}

func TestAll(t *testing.T) {
	ts, err := All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if got := IDs(ts); !reflect.DeepEqual(got, fixedIDs) {
		t.Errorf("IDs = %v, want %v", got, fixedIDs)
	}
	for _, tg := range ts {
		if tg.Version() == nil {
			t.Errorf("%s: version not parsed", tg.ID)
		}
	}
	if ts[0].PointerSize != 8 || ts[1].PointerSize != 4 {
		t.Errorf("pointer sizes = %d, %d", ts[0].PointerSize, ts[1].PointerSize)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	ts, _ := All()
	ts[0].ID = "changed"
	again, _ := All()
	if again[0].ID != fixedIDs[0] {
		t.Error("All() exposed shared state")
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"all", Selection{}, fixedIDs},
		{"by id keeps given order", Selection{IDs: []string{"libc-2.17-x32", "libc-2.18-x64"}}, []string{"libc-2.17-x32", "libc-2.18-x64"}},
		{"libc constraint", Selection{Libc: ">= 2.17"}, []string{"libc-2.18-x64", "libc-2.18-i686", "libc-2.17-x32"}},
		{"nacl only", Selection{Libc: "< 2.10"}, []string{"libc-2.9-nacl-x64", "libc-2.9-nacl-i686"}},
		{"ids and constraint", Selection{IDs: []string{"libc-2.9-nacl-x64", "libc-2.18-i686"}, Libc: "~2.18"}, []string{"libc-2.18-i686"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := Select(tt.sel)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if got := IDs(ts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("IDs = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectErrors(t *testing.T) {
	_, err := Select(Selection{IDs: []string{"libc-2.19-arm"}})
	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("error = %v, want ErrUnknownTarget", err)
	}

	_, err = Select(Selection{Libc: "not a constraint"})
	if err == nil || !strings.Contains(err.Error(), "libc constraint") {
		t.Errorf("error = %v, want constraint parse error", err)
	}

	_, err = Select(Selection{Libc: "> 3.0"})
	if err == nil || !strings.Contains(err.Error(), "no targets") {
		t.Errorf("error = %v, want no targets selected", err)
	}
}

func TestParseIDs(t *testing.T) {
	got := ParseIDs(" libc-2.18-x64, ,libc-2.17-x32 ")
	want := []string{"libc-2.18-x64", "libc-2.17-x32"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseIDs = %v, want %v", got, want)
	}
	if ParseIDs("") != nil {
		t.Error("ParseIDs(\"\") should be nil")
	}
}

func TestByVersion(t *testing.T) {
	ts, _ := All()
	ts[0], ts[4] = ts[4], ts[0]
	ByVersion(ts)
	want := []string{"libc-2.18-i686", "libc-2.18-x64", "libc-2.17-x32", "libc-2.9-nacl-i686", "libc-2.9-nacl-x64"}
	if got := IDs(ts); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	doc := `targets:
  - {id: libc-2.18-x64, libc: "2.18", arch: x86_64, pointer_size: 8}
  - {id: libc-2.18-x64, libc: "2.18", arch: x86_64, pointer_size: 8}
`
	if _, err := parse([]byte(doc)); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("parse error = %v, want duplicate", err)
	}
}
