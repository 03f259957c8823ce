package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "cref" {
		t.Errorf("CLIName() = %q, want %q", got, "cref")
	}
	if got := HomeDir(); got != ".cref" {
		t.Errorf("HomeDir() = %q, want %q", got, ".cref")
	}
	if got := EnvVar("home"); got != "CREF_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", got, "CREF_HOME")
	}
}
