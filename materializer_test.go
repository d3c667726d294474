package ldse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeRejectsNonDividingSplitFactor(t *testing.T) {
	shape := WorkloadShape{
		Dimensions: []Dimension{{ID: 0, Name: "X"}},
		Dataspaces: []Dataspace{{Name: "DS", Ranks: []Rank{{Name: "R", DimIDs: []int{0}, Coefficients: []int{1}}}}},
	}
	nest := newLayoutNest([]string{"R"})
	nest.Intraline["R"] = 5
	nest.Interline["R"] = 1
	initial := &Layouts{
		Nests: [][]*LayoutNest{{nest}},
		Kept:  [][]bool{{true}},
	}
	av := &ArchView{TotalCapacity: []uint32{100}, LineCapacity: []uint32{100}, Kept: [][]bool{{true}}}

	enum := &enumeration{
		SplitOptions: [][][]SplittingOption{{{{Assignment: map[string]int{"R": 3}}}}},
		PackOptions:  [][][]PackingOption{{{{}}}},
		NSplit:       [][]int{{1}},
		NPack:        [][]int{{0}},
		Slots:        []slot{{Level: 0, Dataspace: 0}},
		S:            1,
		P:            1,
	}

	_, err := materialize(shape, initial, av, enum, 0, 0)
	require.Error(t, err)
	var violation *LayoutViolationError
	assert.ErrorAs(t, err, &violation)
}

func TestMaterializeRejectsOutOfRangeIDs(t *testing.T) {
	shape := WorkloadShape{Dataspaces: []Dataspace{{Name: "DS"}}}
	initial := &Layouts{Nests: [][]*LayoutNest{{}}, Kept: [][]bool{{}}}
	av := &ArchView{TotalCapacity: []uint32{100}, LineCapacity: []uint32{100}, Kept: [][]bool{{}}}
	enum := &enumeration{S: 2, P: 3}

	_, err := materialize(shape, initial, av, enum, 2, 0)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint64(2), rangeErr.Index)
	assert.Equal(t, uint64(2), rangeErr.Limit)

	_, err = materialize(shape, initial, av, enum, 0, 3)
	require.ErrorAs(t, err, &rangeErr)
}
