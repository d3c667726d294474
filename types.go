// Package ldse implements the Layout Design-Space Engine: given an
// architecture's memory hierarchy, a tiled loop nest, and a workload's
// dataspace geometry, it enumerates the legal intraline/interline factor
// assignments (layouts) for every (storage level, dataspace) pair and
// exposes that set as a flat, integer-indexed design space.
package ldse

// SpacetimeClass tags a loop as iterating sequentially (Temporal) or
// mapping to parallel hardware (Spatial).
type SpacetimeClass int

const (
	Temporal SpacetimeClass = iota
	Spatial
)

func (c SpacetimeClass) String() string {
	if c == Spatial {
		return "spatial"
	}
	return "temporal"
}

// Dimension is a problem dimension with a stable ID and display name.
// The dimension table is produced once from the workload shape and never
// changes for the lifetime of an Engine.
type Dimension struct {
	ID   int
	Name string
}

// Rank is one storage axis of a dataspace. ZeroPadding only takes effect
// at the outermost storage level.
type Rank struct {
	Name         string
	DimIDs       []int
	Coefficients []int
	ZeroPadding  int
}

// Dataspace is an ordered set of ranks (one logical tensor).
type Dataspace struct {
	Name  string
	Ranks []Rank
}

// Loop is one nest level: which dimension it iterates, its bound, and
// whether it is spatial or temporal.
type Loop struct {
	DimID int
	Bound int
	Class SpacetimeClass
}

// Mapping is the tiled loop nest. LoopsByLevel is indexed by storage
// level, level 0 being the innermost level (closest to compute) and
// len(LoopsByLevel)-1 the outermost. This is the Go-native equivalent of
// "ordered loop list + storage_tiling_boundaries": the boundaries have
// already been applied by the caller when grouping loops per level.
// BypassNest[l][d] is true when dataspace d is bypassed (not resident) at
// level l — the complement of the "kept" bit used internally.
type Mapping struct {
	LoopsByLevel [][]Loop
	BypassNest   [][]bool
}

// NumLevels returns the number of storage levels this mapping spans.
func (m Mapping) NumLevels() int {
	return len(m.LoopsByLevel)
}

// ArchLevelSpec describes one storage level's architectural parameters.
// TotalCapacity, BlockSize, ReadBW and WriteBW are all optional. An unset
// TotalCapacity defaults to the max uint32 (effectively unlimited); an
// unset BlockSize falls back to max(ReadBW, WriteBW).
type ArchLevelSpec struct {
	Name          string
	TotalCapacity *int64
	BlockSize     *int64
	ReadBW        *int64
	WriteBW       *int64
}

// ArchSpec is the architecture's memory hierarchy, innermost level first.
type ArchSpec struct {
	Levels []ArchLevelSpec
}

// WorkloadShape is the dimension table and per-dataspace rank geometry.
type WorkloadShape struct {
	Dimensions []Dimension
	Dataspaces []Dataspace
}

// LayoutSkeleton carries the blank, caller-supplied metadata that rides
// along with every materialized layout without the enumerator ever
// inspecting it: per-level port counts and reuse-assumption flags.
type LayoutSkeleton struct {
	PortCounts       [][]int
	ReuseAssumptions [][]bool
}
