package ldse

import "fmt"

// buildConcordantLayout derives the initial intraline/interline factors
// from the loop nest. The result mirrors spatial
// hardware replication on the intraline side and temporal tiling on the
// interline side — it is "concordant" with the mapping by construction,
// and is never mutated afterward; Materialize always starts from a fresh
// copy of it.
func buildConcordantLayout(shape WorkloadShape, mapping Mapping, av *ArchView) (*Layouts, error) {
	levels := mapping.NumLevels()
	if levels != len(av.TotalCapacity) {
		return nil, newConfigError(fmt.Sprintf(
			"mapping spans %d storage levels but architecture declares %d", levels, len(av.TotalCapacity)))
	}
	if len(shape.Dataspaces) == 0 {
		return nil, newConfigError("workload shape declares no dataspaces")
	}

	dimIDs := make([]int, len(shape.Dimensions))
	for i, dm := range shape.Dimensions {
		dimIDs[i] = dm.ID
	}

	// Step 1: per-level intraline/interline dim-products, and whether the
	// level has any spatial loop at all.
	il := make([]map[int]int, levels)
	xl := make([]map[int]int, levels)
	hasSpatial := make([]bool, levels)
	for l := 0; l < levels; l++ {
		il[l] = make(map[int]int, len(dimIDs))
		xl[l] = make(map[int]int, len(dimIDs))
		for _, id := range dimIDs {
			il[l][id] = 1
			xl[l][id] = 1
		}
		for _, lp := range mapping.LoopsByLevel[l] {
			if lp.Class == Spatial {
				il[l][lp.DimID] *= lp.Bound
				hasSpatial[l] = true
			} else {
				xl[l][lp.DimID] *= lp.Bound
			}
		}
	}

	// Step 2: overall dim-product.
	overall := make([]map[int]int, levels)
	for l := 0; l < levels; l++ {
		overall[l] = make(map[int]int, len(dimIDs))
		for _, id := range dimIDs {
			overall[l][id] = il[l][id] * xl[l][id]
		}
	}

	// Step 3: cumulative families, innermost level upward. cumIL resets
	// at any level with no spatial loop at all; cumO is unconditional.
	cumIL := make([]map[int]int, levels)
	cumO := make([]map[int]int, levels)
	for l := 0; l < levels; l++ {
		cumIL[l] = make(map[int]int, len(dimIDs))
		cumO[l] = make(map[int]int, len(dimIDs))
		for _, id := range dimIDs {
			switch {
			case l == 0:
				cumIL[l][id] = il[l][id]
			case hasSpatial[l]:
				cumIL[l][id] = cumIL[l-1][id] * il[l][id]
			default:
				cumIL[l][id] = il[l][id]
			}
			if l == 0 {
				cumO[l][id] = overall[l][id]
			} else {
				cumO[l][id] = cumO[l-1][id] * overall[l][id]
			}
		}
	}

	// Step 4: per (level, dataspace, rank) factors.
	nests := make([][]*LayoutNest, levels)
	zp := make(map[string]int)
	for l := 0; l < levels; l++ {
		nests[l] = make([]*LayoutNest, len(shape.Dataspaces))
		for d, ds := range shape.Dataspaces {
			order := make([]string, len(ds.Ranks))
			for i, r := range ds.Ranks {
				order[i] = r.Name
			}
			nest := newLayoutNest(order)
			kept := av.Kept[l][d]

			for _, r := range ds.Ranks {
				if err := validateRank(r); err != nil {
					return nil, err
				}

				zpVal := 0
				if l == levels-1 {
					zpVal = r.ZeroPadding
					zp[r.Name] = r.ZeroPadding
				}

				totalIntraline := multiDimValue(r.DimIDs, r.Coefficients, cumIL[l])
				totalRankSize := multiDimValue(r.DimIDs, r.Coefficients, cumO[l])
				totalInterline := ceilDivInt(totalRankSize-2*zpVal, totalIntraline)

				if kept {
					nest.Intraline[r.Name] = totalIntraline
					nest.Interline[r.Name] = totalInterline
				} else {
					nest.Intraline[r.Name] = 1
					nest.Interline[r.Name] = totalRankSize
				}
			}
			nests[l][d] = nest
		}
	}

	return &Layouts{
		Nests:      nests,
		Kept:       av.Kept,
		Dimensions: shape.Dimensions,
		ZeroPadding: zp,
	}, nil
}

func validateRank(r Rank) error {
	if len(r.DimIDs) == 0 {
		return newConfigError(fmt.Sprintf("rank %q factorizes no dimensions", r.Name))
	}
	if len(r.Coefficients) != len(r.DimIDs) {
		return newConfigError(fmt.Sprintf(
			"rank %q has %d dims but %d coefficients", r.Name, len(r.DimIDs), len(r.Coefficients)))
	}
	return nil
}

// multiDimValue sums the per-dim contribution of a (possibly multi-dim)
// rank against a cumulative-value table (cumIL for the intraline side,
// cumO for the total side — the rule is applied symmetrically to both).
// The last dim's range is half-open, so it contributes v*coef-1; any
// earlier dim whose current value is 1 contributes only the bare 1.
func multiDimValue(dims, coef []int, cum map[int]int) int {
	if len(dims) == 1 {
		return cum[dims[0]]
	}
	sum := 0
	last := len(dims) - 1
	for i, dimID := range dims {
		v := cum[dimID]
		switch {
		case i == last:
			sum += v*coef[i] - 1
		case v == 1:
			sum += v
		default:
			sum += v * coef[i]
		}
	}
	return sum
}
