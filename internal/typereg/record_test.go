package typereg

import (
	"encoding/json"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		raw      string
		name     string
		indirect bool
	}{
		{"int", "int", false},
		{"char*", "char", true},
		{"char**", "char*", true},
		{"int[]", "int", true},
		{"<func>", "<func>", false},
	}
	for _, tt := range tests {
		got := ParseTarget(tt.raw)
		if got.Name != tt.name || got.Indirect != tt.indirect || got.Raw != tt.raw {
			t.Errorf("ParseTarget(%q) = %+v, want {%q %q %v}", tt.raw, got, tt.raw, tt.name, tt.indirect)
		}
	}
}

func TestRecordUnmarshalJSON(t *testing.T) {
	var unit Unit
	data := `{"int": ["base", 4], "stat": ["struct", 144], "caddr_t": ["typedef", "char*"]}`
	if err := json.Unmarshal([]byte(data), &unit); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !unit["int"].Equal(Base(4)) {
		t.Errorf("int = %s", unit["int"])
	}
	if !unit["stat"].Equal(Struct(144)) {
		t.Errorf("stat = %s", unit["stat"])
	}
	if got := unit["caddr_t"]; got.Category != CategoryTypedef || !got.Target.Indirect {
		t.Errorf("caddr_t = %+v", got)
	}

	out, err := json.Marshal(unit["caddr_t"])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `["typedef","char*"]` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestRecordUnmarshalJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not an array", `{"a": 1}`, "type record"},
		{"wrong arity", `["base"]`, "got 1 elements"},
		{"unknown category", `["union", 4]`, "unknown category"},
		{"string size", `["base", "4"]`, "base size"},
		{"numeric target", `["typedef", 4]`, "typedef target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			err := json.Unmarshal([]byte(tt.data), &r)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRecordYAML(t *testing.T) {
	var unit Unit
	data := "int: [base, 4]\nptr: [typedef, \"void*\"]\n"
	if err := yaml.Unmarshal([]byte(data), &unit); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !unit["int"].Equal(Base(4)) {
		t.Errorf("int = %s", unit["int"])
	}
	if !unit["ptr"].Equal(Typedef("void*")) {
		t.Errorf("ptr = %s", unit["ptr"])
	}

	out, err := yaml.Marshal(Unit{"int": Base(4)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "int: [base, 4]" {
		t.Errorf("Marshal = %q", got)
	}
}

func TestRecordString(t *testing.T) {
	if got := Base(4).String(); got != `["base", 4]` {
		t.Errorf("String() = %s", got)
	}
	if got := Typedef("int").String(); got != `["typedef", "int"]` {
		t.Errorf("String() = %s", got)
	}
}
