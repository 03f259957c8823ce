// Package targets describes the fixed set of libc builds cref compares and
// selects the subset a report covers.
package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/shinh/cref/internal/manifest"
	"go.yaml.in/yaml/v3"
)

//go:embed targets.yaml
var rawTargets []byte

// ErrUnknownTarget is returned when a selection names a target that is not
// part of the fixed list.
var ErrUnknownTarget = errors.New("unknown target")

// Target is one libc build.
type Target struct {
	ID          string `yaml:"id" json:"id"`
	Libc        string `yaml:"libc" json:"libc"`
	Arch        string `yaml:"arch" json:"arch"`
	ABI         string `yaml:"abi,omitempty" json:"abi,omitempty"`
	PointerSize int    `yaml:"pointer_size" json:"pointer_size"`

	version *semver.Version
}

// Version returns the parsed libc version.
func (t Target) Version() *semver.Version { return t.version }

type document struct {
	Targets []Target `yaml:"targets"`
}

var (
	loadOnce sync.Once
	all      []Target
	loadErr  error
)

// All returns the fixed targets in report column order.
func All() ([]Target, error) {
	loadOnce.Do(func() {
		all, loadErr = parse(rawTargets)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return append([]Target(nil), all...), nil
}

func parse(data []byte) ([]Target, error) {
	result, err := manifest.Validate(manifest.SchemaTargets, data)
	if err != nil {
		return nil, fmt.Errorf("validating targets: %w", err)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("targets manifest: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing targets: %w", err)
	}

	seen := make(map[string]bool, len(doc.Targets))
	for i := range doc.Targets {
		t := &doc.Targets[i]
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate target %s", t.ID)
		}
		seen[t.ID] = true

		v, err := semver.NewVersion(t.Libc)
		if err != nil {
			return nil, fmt.Errorf("target %s: parsing libc version %q: %w", t.ID, t.Libc, err)
		}
		t.version = v
	}
	return doc.Targets, nil
}

// IDs returns the ids of ts in order.
func IDs(ts []Target) []string {
	ids := make([]string, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}
	return ids
}

// Selection restricts the fixed target list.
type Selection struct {
	// IDs picks targets by id, in the given order. Empty means all targets.
	IDs []string
	// Libc is a semver constraint on the libc version, e.g. ">= 2.17".
	Libc string
}

// ParseIDs splits a comma-separated id list, dropping blanks.
func ParseIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Select applies sel to the fixed targets.
func Select(sel Selection) ([]Target, error) {
	ts, err := All()
	if err != nil {
		return nil, err
	}

	if len(sel.IDs) > 0 {
		byID := make(map[string]Target, len(ts))
		for _, t := range ts {
			byID[t.ID] = t
		}
		picked := make([]Target, 0, len(sel.IDs))
		for _, id := range sel.IDs {
			t, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownTarget, id, strings.Join(IDs(ts), ", "))
			}
			picked = append(picked, t)
		}
		ts = picked
	}

	if sel.Libc != "" {
		c, err := semver.NewConstraint(sel.Libc)
		if err != nil {
			return nil, fmt.Errorf("parsing libc constraint %q: %w", sel.Libc, err)
		}
		filtered := ts[:0:0]
		for _, t := range ts {
			if c.Check(t.version) {
				filtered = append(filtered, t)
			}
		}
		ts = filtered
	}

	if len(ts) == 0 {
		return nil, fmt.Errorf("no targets selected")
	}
	return ts, nil
}

// ByVersion sorts ts by libc version, newest first, keeping the original
// order among equal versions.
func ByVersion(ts []Target) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].version.GreaterThan(ts[j].version)
	})
}
