// Package compare runs the report pipelines: locate each target's input in
// the data directory, load it, and build the comparison table.
package compare

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/shinh/cref/internal/config"
	"github.com/shinh/cref/internal/descriptor"
	"github.com/shinh/cref/internal/macros"
	"github.com/shinh/cref/internal/report"
	"github.com/shinh/cref/internal/targets"
	"github.com/shinh/cref/internal/typereg"
	"golang.org/x/sync/errgroup"
)

// Options configures a comparison run.
type Options struct {
	DataDir        string
	Targets        []targets.Target
	AllowConflicts []string
	PointerType    string
}

// FromSettings resolves the target selection of s.
func FromSettings(s config.Settings) (Options, error) {
	ts, err := targets.Select(targets.Selection{IDs: s.Targets, Libc: s.Libc})
	if err != nil {
		return Options{}, err
	}
	return Options{
		DataDir:        s.DataDir,
		Targets:        ts,
		AllowConflicts: s.AllowConflicts,
		PointerType:    s.PointerType,
	}, nil
}

func (o Options) dataDir() string {
	if o.DataDir == "" {
		return "."
	}
	return o.DataDir
}

// Sizeof loads every target's descriptor concurrently and builds the type size table.
func Sizeof(o Options) (*report.Table, error) {
	platforms := make([]typereg.Platform, len(o.Targets))
	var eg errgroup.Group
	for i, t := range o.Targets {
		eg.Go(func() error {
			p, err := descriptor.LoadPlatform(o.dataDir(), t.ID)
			if err != nil {
				return err
			}
			log.Debugf("%s: %d compilation units", t.ID, len(p.Units))
			platforms[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	loader := &typereg.Loader{
		AllowList:   typereg.DefaultAllowList.With(o.AllowConflicts...),
		PointerType: o.PointerType,
	}
	tables, names, err := loader.LoadAll(platforms)
	if err != nil {
		return nil, fmt.Errorf("merging type records: %w", err)
	}
	log.Infof("compared %d types across %d targets", len(names), len(tables))
	return report.Sizeof(tables, names), nil
}

// Macros loads every target's macro listing and builds the macro table.
func Macros(o Options) (*report.Table, error) {
	ids := targets.IDs(o.Targets)
	listings := make([]map[string]string, len(ids))
	var eg errgroup.Group
	for i, id := range ids {
		eg.Go(func() error {
			l, err := macros.Load(o.dataDir(), id)
			if err != nil {
				return err
			}
			log.Debugf("%s: %d macros", id, len(l))
			listings[i] = l
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return macros.Compare(ids, listings), nil
}
