package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateTargets(t *testing.T) {
	valid := `targets:
  - id: libc-2.18-x64
    libc: "2.18"
    arch: x86_64
    pointer_size: 8
`
	result, err := Validate(SchemaTargets, []byte(valid))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid, got issues: %v", result.Issues)
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil", result.Err())
	}
}

func TestValidateTargetsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		keyword string
		path    string
	}{
		{
			name:    "missing targets",
			doc:     "other: 1\n",
			keyword: "required",
		},
		{
			name:    "bad pointer size",
			doc:     "targets:\n  - {id: libc-2.18-x64, libc: \"2.18\", arch: x86_64, pointer_size: 2}\n",
			keyword: "enum",
			path:    "/targets/0/pointer_size",
		},
		{
			name:    "bad id",
			doc:     "targets:\n  - {id: musl, libc: \"2.18\", arch: x86_64, pointer_size: 8}\n",
			keyword: "pattern",
			path:    "/targets/0/id",
		},
		{
			name:    "unknown field",
			doc:     "targets:\n  - {id: libc-2.18-x64, libc: \"2.18\", arch: x86_64, pointer_size: 8, color: red}\n",
			keyword: "additionalProperties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(SchemaTargets, []byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid, got valid")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword && (tt.path == "" || issue.Path == tt.path) {
					found = true
				}
			}
			if !found {
				t.Errorf("no %s issue at %q in %v", tt.keyword, tt.path, result.Issues)
			}
			if result.Err() == nil {
				t.Error("Err() = nil for invalid result")
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{"empty", "", true},
		{"full", "data_dir: out\ntargets: libc-2.18-x64,libc-2.18-i686\nlibc: \">= 2.17\"\nallow_conflicts: sigcontext\npointer_type: intptr_t\n", true},
		{"bad targets list", "targets: \"a, b\"\n", false},
		{"unknown key", "mirror: http://example.com\n", false},
		{"empty data dir", "data_dir: \"\"\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(SchemaConfig, []byte(tt.doc))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %v)", result.Valid, tt.valid, result.Issues)
			}
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	_, err := Validate("nope", []byte("a: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown schema") {
		t.Errorf("error = %v, want unknown schema", err)
	}
}

func TestValidateBadYAML(t *testing.T) {
	if _, err := Validate(SchemaConfig, []byte("a: [1\n")); err == nil {
		t.Error("expected YAML parse error, got nil")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("pointer_type: long\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := ValidateFile(SchemaConfig, path)
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Issues)
	}

	if _, err := ValidateFile(SchemaConfig, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
