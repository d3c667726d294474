package ldse

import "gonum.org/v1/gonum/stat/combin"

// SplittingOption moves factors from intraline to interline for one rank
// combination of a (level, dataspace) pair: rank name -> split factor
// (>= 2, a divisor of that rank's current intraline factor).
type SplittingOption struct {
	Assignment map[string]int
}

// PackingOption moves factors from interline to intraline: rank name ->
// pack factor (>= 1, a divisor of that rank's current interline factor).
type PackingOption struct {
	Assignment map[string]int
}

// slot identifies one (level, dataspace) pair in the mixed-radix decode
// order used for both split_id and pack_id: levels outermost-first,
// dataspaces outermost-first within each level.
type slot struct {
	Level, Dataspace int
}

type enumeration struct {
	SplitOptions [][][]SplittingOption
	PackOptions  [][][]PackingOption
	NSplit       [][]int
	NPack        [][]int
	Slots        []slot
	S            uint64
	P            uint64
}

// splittingCombinationSizeLimit bounds the rank-combination search for
// splitting options — a pragmatic cap that keeps enumeration tractable
// while still covering virtually all architectures of interest.
const splittingCombinationSizeLimit = 3

// packingPruneRatio is the α used to keep only packing options within
// 10% of the best total packing factor seen so far for a given (l,d).
const packingPruneRatio = 0.9

func buildEnumeration(shape WorkloadShape, initial *Layouts, av *ArchView) *enumeration {
	levels := len(av.LineCapacity)
	numDS := len(shape.Dataspaces)

	splitOpts := make([][][]SplittingOption, levels)
	packOpts := make([][][]PackingOption, levels)
	nSplit := make([][]int, levels)
	nPack := make([][]int, levels)

	for l := 0; l < levels; l++ {
		splitOpts[l] = make([][]SplittingOption, numDS)
		packOpts[l] = make([][]PackingOption, numDS)
		nSplit[l] = make([]int, numDS)
		nPack[l] = make([]int, numDS)

		lineCap := int(av.LineCapacity[l])
		for d, ds := range shape.Dataspaces {
			if !av.Kept[l][d] {
				continue
			}
			nest := initial.Nests[l][d]
			prod := nest.IntralineProduct()
			if prod == 0 {
				// A zero-extent dataspace (a dimension bound of 0)
				// trivially satisfies the line-capacity invariant; the
				// divisor search has nothing to act on.
				continue
			}
			switch {
			case prod > lineCap:
				opts := enumerateSplittingOptions(ds, nest, lineCap, prod)
				splitOpts[l][d] = opts
				nSplit[l][d] = len(opts)
			case prod < lineCap:
				opts := enumeratePackingOptions(ds, nest, lineCap, prod)
				packOpts[l][d] = opts
				nPack[l][d] = len(opts)
			}
		}
	}

	slots := make([]slot, 0, levels*numDS)
	for l := levels - 1; l >= 0; l-- {
		for d := numDS - 1; d >= 0; d-- {
			slots = append(slots, slot{Level: l, Dataspace: d})
		}
	}

	s := uint64(1)
	p := uint64(1)
	for _, sl := range slots {
		if n := nSplit[sl.Level][sl.Dataspace]; n > 0 {
			s *= uint64(n)
		}
		if n := nPack[sl.Level][sl.Dataspace]; n > 0 {
			p *= uint64(n)
		}
	}

	return &enumeration{
		SplitOptions: splitOpts,
		PackOptions:  packOpts,
		NSplit:       nSplit,
		NPack:        nPack,
		Slots:        slots,
		S:            s,
		P:            p,
	}
}

// enumerateSplittingOptions moves factors from intraline to interline: for
// every non-empty rank combination up to size 3, depth-first search the
// ascending-divisor cartesian product and record the first assignment that
// brings the intraline product at or below line capacity. Combinations
// that admit no satisfying assignment produce no option.
func enumerateSplittingOptions(ds Dataspace, nest *LayoutNest, lineCap, prod int) []SplittingOption {
	n := len(ds.Ranks)
	var options []SplittingOption

	for k := 1; k <= minInt(splittingCombinationSizeLimit, n); k++ {
		for _, combo := range combin.Combinations(n, k) {
			otherProduct := prod
			factorLists := make([][]int, k)
			for i, idx := range combo {
				cur := nest.Intraline[ds.Ranks[idx].Name]
				otherProduct /= cur
				factorLists[i] = divisorsGreaterThan1(cur)
			}
			if assignment, ok := firstSatisfyingSplit(ds, nest, combo, factorLists, otherProduct, lineCap); ok {
				options = append(options, SplittingOption{Assignment: assignment})
			}
		}
	}
	return options
}

func firstSatisfyingSplit(ds Dataspace, nest *LayoutNest, combo []int, factorLists [][]int, otherProduct, lineCap int) (map[string]int, bool) {
	k := len(combo)
	chosen := make([]int, k)

	var rec func(pos int) bool
	rec = func(pos int) bool {
		if pos == k {
			comboProduct := 1
			for i, idx := range combo {
				cur := nest.Intraline[ds.Ranks[idx].Name]
				comboProduct *= cur / chosen[i]
			}
			return otherProduct*comboProduct <= lineCap
		}
		for _, f := range factorLists[pos] {
			chosen[pos] = f
			if rec(pos + 1) {
				return true
			}
		}
		return false
	}

	if !rec(0) {
		return nil, false
	}
	assignment := make(map[string]int, k)
	for i, idx := range combo {
		assignment[ds.Ranks[idx].Name] = chosen[i]
	}
	return assignment, true
}

// enumeratePackingOptions moves factors from interline to intraline: the
// single rank combination is every rank whose interline factor exceeds 1.
// Depth-first search walks each rank's divisors in descending order and
// records every assignment that stays within line capacity and within
// packingPruneRatio of the best total packing factor seen so far.
func enumeratePackingOptions(ds Dataspace, nest *LayoutNest, lineCap, prod int) []PackingOption {
	var ranks []Rank
	for _, r := range ds.Ranks {
		if nest.Interline[r.Name] > 1 {
			ranks = append(ranks, r)
		}
	}
	if len(ranks) == 0 {
		return nil
	}

	factorLists := make([][]int, len(ranks))
	for i, r := range ranks {
		factorLists[i] = divisorsDescending(nest.Interline[r.Name])
	}

	maxUsefulP := ceilDivInt(lineCap, prod)
	pMaxSoFar := 0

	var options []PackingOption
	chosen := make([]int, len(ranks))

	var rec func(pos int)
	rec = func(pos int) {
		if pos == len(ranks) {
			comboP := 1
			for _, f := range chosen {
				comboP *= f
			}
			if prod*comboP > lineCap {
				return
			}
			if pMaxSoFar > 0 && float64(comboP) <= packingPruneRatio*float64(pMaxSoFar) {
				return
			}
			assignment := make(map[string]int, len(ranks))
			for i, r := range ranks {
				assignment[r.Name] = chosen[i]
			}
			options = append(options, PackingOption{Assignment: assignment})
			if comboP > pMaxSoFar {
				pMaxSoFar = minInt(comboP, maxUsefulP)
			}
			return
		}
		for _, f := range factorLists[pos] {
			chosen[pos] = f
			rec(pos + 1)
		}
	}
	rec(0)
	return options
}
