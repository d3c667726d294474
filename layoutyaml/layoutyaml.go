// Package layoutyaml is a debug-only sibling of the ldse package: it
// serializes a materialized Layouts value to YAML for humans to read
// while tracing a mapper search. It is never on the hot path and the
// core engine does not import it.
package layoutyaml

import (
	"log/slog"
	"os"

	"github.com/maeri-project/timeloop"
	"gopkg.in/yaml.v3"
)

// nestYAML mirrors ldse.LayoutNest with YAML field tags. The intraline and
// interline maps are emitted with their keys sorted by name, not in
// canonical rank order; rank_order carries the canonical order.
type nestYAML struct {
	Intraline map[string]int `yaml:"intraline"`
	Interline map[string]int `yaml:"interline"`
	RankOrder []string       `yaml:"rank_order"`
}

type levelYAML struct {
	Level int        `yaml:"level"`
	Nests []nestYAML `yaml:"nests"`
	Kept  []bool     `yaml:"kept"`
}

type documentYAML struct {
	SplitID uint64      `yaml:"split_id,omitempty"`
	PackID  uint64      `yaml:"pack_id,omitempty"`
	Levels  []levelYAML `yaml:"levels"`
}

// Marshal renders layout as a debug YAML document. splitID and packID are
// recorded for context only; pass 0, 0 when dumping the initial concordant
// layout.
func Marshal(layout *ldse.Layouts, splitID, packID uint64) ([]byte, error) {
	doc := documentYAML{
		SplitID: splitID,
		PackID:  packID,
		Levels:  make([]levelYAML, len(layout.Nests)),
	}
	for l, row := range layout.Nests {
		lvl := levelYAML{Level: l, Nests: make([]nestYAML, len(row))}
		if l < len(layout.Kept) {
			lvl.Kept = layout.Kept[l]
		}
		for d, nest := range row {
			lvl.Nests[d] = nestYAML{
				Intraline: nest.Intraline,
				Interline: nest.Interline,
				RankOrder: nest.RankOrder,
			}
		}
		doc.Levels[l] = lvl
	}
	return yaml.Marshal(doc)
}

// DumpFile writes layout's debug YAML to path, logging the write at debug
// level. It is meant for ad hoc use from a test or a demo driver, never
// from a production code path.
func DumpFile(path string, layout *ldse.Layouts, splitID, packID uint64) error {
	data, err := Marshal(layout, splitID, packID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	slog.Debug("wrote layout debug dump", "path", path, "split_id", splitID, "pack_id", packID)
	return nil
}
