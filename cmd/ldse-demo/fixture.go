package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/maeri-project/timeloop"
)

// fixtureJSON is the on-disk shape of a demo input: an architecture, a
// tiled mapping, and a workload's dataspace geometry. This format is not
// owned by the ldse package — config I/O is entirely an external
// collaborator's concern. It follows the usual read-a-JSON-file-into-a-
// wire-struct-then-convert convention used by the demo's loader.
type fixtureJSON struct {
	Levels           []archLevelJSON `json:"levels"`
	LoopsByLevel     [][]loopJSON    `json:"loops_by_level"`
	BypassNest       [][]bool        `json:"bypass_nest"`
	Dimensions       []dimensionJSON `json:"dimensions"`
	Dataspaces       []dataspaceJSON `json:"dataspaces"`
	PortCounts       [][]int         `json:"port_counts,omitempty"`
	ReuseAssumptions [][]bool        `json:"reuse_assumptions,omitempty"`
}

type archLevelJSON struct {
	Name          string `json:"name"`
	TotalCapacity *int64 `json:"total_capacity,omitempty"`
	BlockSize     *int64 `json:"block_size,omitempty"`
	ReadBW        *int64 `json:"read_bw,omitempty"`
	WriteBW       *int64 `json:"write_bw,omitempty"`
}

type loopJSON struct {
	DimID int    `json:"dim_id"`
	Bound int    `json:"bound"`
	Class string `json:"class"` // "temporal" or "spatial"
}

type rankJSON struct {
	Name         string `json:"name"`
	DimIDs       []int  `json:"dim_ids"`
	Coefficients []int  `json:"coefficients"`
	ZeroPadding  int    `json:"zero_padding,omitempty"`
}

type dataspaceJSON struct {
	Name  string     `json:"name"`
	Ranks []rankJSON `json:"ranks"`
}

type dimensionJSON struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func loadFixture(path string) (ldse.ArchSpec, ldse.Mapping, ldse.WorkloadShape, ldse.LayoutSkeleton, error) {
	var empty4 ldse.LayoutSkeleton

	data, err := os.ReadFile(path)
	if err != nil {
		return ldse.ArchSpec{}, ldse.Mapping{}, ldse.WorkloadShape{}, empty4, fmt.Errorf("reading fixture file: %w", err)
	}

	var fx fixtureJSON
	if err := json.Unmarshal(data, &fx); err != nil {
		return ldse.ArchSpec{}, ldse.Mapping{}, ldse.WorkloadShape{}, empty4, fmt.Errorf("parsing fixture JSON: %w", err)
	}

	arch := ldse.ArchSpec{Levels: make([]ldse.ArchLevelSpec, len(fx.Levels))}
	for i, lvl := range fx.Levels {
		arch.Levels[i] = ldse.ArchLevelSpec{
			Name:          lvl.Name,
			TotalCapacity: lvl.TotalCapacity,
			BlockSize:     lvl.BlockSize,
			ReadBW:        lvl.ReadBW,
			WriteBW:       lvl.WriteBW,
		}
	}

	loopsByLevel := make([][]ldse.Loop, len(fx.LoopsByLevel))
	for l, loops := range fx.LoopsByLevel {
		loopsByLevel[l] = make([]ldse.Loop, len(loops))
		for i, lp := range loops {
			class := ldse.Temporal
			if lp.Class == "spatial" {
				class = ldse.Spatial
			}
			loopsByLevel[l][i] = ldse.Loop{DimID: lp.DimID, Bound: lp.Bound, Class: class}
		}
	}

	mapping := ldse.Mapping{LoopsByLevel: loopsByLevel, BypassNest: fx.BypassNest}

	dims := make([]ldse.Dimension, len(fx.Dimensions))
	for i, d := range fx.Dimensions {
		dims[i] = ldse.Dimension{ID: d.ID, Name: d.Name}
	}

	dataspaces := make([]ldse.Dataspace, len(fx.Dataspaces))
	for i, ds := range fx.Dataspaces {
		ranks := make([]ldse.Rank, len(ds.Ranks))
		for j, r := range ds.Ranks {
			ranks[j] = ldse.Rank{
				Name:         r.Name,
				DimIDs:       r.DimIDs,
				Coefficients: r.Coefficients,
				ZeroPadding:  r.ZeroPadding,
			}
		}
		dataspaces[i] = ldse.Dataspace{Name: ds.Name, Ranks: ranks}
	}

	shape := ldse.WorkloadShape{Dimensions: dims, Dataspaces: dataspaces}
	skeleton := ldse.LayoutSkeleton{PortCounts: fx.PortCounts, ReuseAssumptions: fx.ReuseAssumptions}

	return arch, mapping, shape, skeleton, nil
}
