package layoutyaml

import (
	"testing"

	"github.com/maeri-project/timeloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalRoundTripsRankOrder(t *testing.T) {
	arch := ldse.ArchSpec{Levels: []ldse.ArchLevelSpec{{Name: "L0", BlockSize: nil}}}
	mapping := ldse.Mapping{
		LoopsByLevel: [][]ldse.Loop{{{DimID: 0, Bound: 4, Class: ldse.Temporal}}},
		BypassNest:   [][]bool{{false}},
	}
	shape := ldse.WorkloadShape{
		Dimensions: []ldse.Dimension{{ID: 0, Name: "X"}},
		Dataspaces: []ldse.Dataspace{{Name: "DS", Ranks: []ldse.Rank{{Name: "R", DimIDs: []int{0}, Coefficients: []int{1}}}}},
	}

	e := ldse.NewEngine()
	require.NoError(t, e.Init(arch, mapping, shape, ldse.LayoutSkeleton{}))

	data, err := Marshal(e.InitialLayout(), 0, 0)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	levels, ok := doc["levels"].([]interface{})
	require.True(t, ok)
	assert.Len(t, levels, 1)

	level0, ok := levels[0].(map[string]interface{})
	require.True(t, ok)
	nests, ok := level0["nests"].([]interface{})
	require.True(t, ok)
	require.Len(t, nests, 1)
	nest0, ok := nests[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"R"}, nest0["rank_order"])
}
