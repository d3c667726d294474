package ldse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerateSplittingOptionsCapsComboSize(t *testing.T) {
	ds := Dataspace{Ranks: []Rank{
		{Name: "R1"}, {Name: "R2"}, {Name: "R3"}, {Name: "R4"},
	}}
	nest := newLayoutNest([]string{"R1", "R2", "R3", "R4"})
	for _, r := range ds.Ranks {
		nest.Intraline[r.Name] = 2
	}
	opts := enumerateSplittingOptions(ds, nest, 8, 16)
	assert.NotEmpty(t, opts)
	for _, o := range opts {
		assert.LessOrEqual(t, len(o.Assignment), splittingCombinationSizeLimit)
	}
}

func TestEnumeratePackingOptionsPrunesBelowRatio(t *testing.T) {
	ds := Dataspace{Ranks: []Rank{{Name: "R"}}}
	nest := newLayoutNest([]string{"R"})
	nest.Intraline["R"] = 1
	nest.Interline["R"] = 100

	opts := enumeratePackingOptions(ds, nest, 100, 1)
	assert.NotEmpty(t, opts)

	best := 0
	for _, o := range opts {
		if o.Assignment["R"] > best {
			best = o.Assignment["R"]
		}
	}
	for _, o := range opts {
		assert.Greater(t, float64(o.Assignment["R"]), packingPruneRatio*float64(best))
	}
}

func TestEnumeratePackingOptionsEmptyWhenNoInterlineSlack(t *testing.T) {
	ds := Dataspace{Ranks: []Rank{{Name: "R"}}}
	nest := newLayoutNest([]string{"R"})
	nest.Intraline["R"] = 1
	nest.Interline["R"] = 1

	opts := enumeratePackingOptions(ds, nest, 100, 1)
	assert.Nil(t, opts)
}
