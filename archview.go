package ldse

// ArchView distills an ArchSpec (plus the mapping's bypass bits) down to
// the two integers per level that drive every downstream decision: total
// capacity and line capacity, both in words and saturated to 32 bits. It
// also materializes the kept[l][d] matrix from the bypass specification.
type ArchView struct {
	TotalCapacity []uint32
	LineCapacity  []uint32
	Kept          [][]bool
}

func buildArchView(arch ArchSpec, bypass [][]bool, numDataspaces int) (*ArchView, error) {
	levels := len(arch.Levels)
	if levels == 0 {
		return nil, newConfigError("architecture spec declares no storage levels")
	}

	totalCap := make([]uint32, levels)
	lineCap := make([]uint32, levels)
	for l, lvl := range arch.Levels {
		if lvl.TotalCapacity != nil {
			totalCap[l] = saturateUint32(*lvl.TotalCapacity)
		} else {
			totalCap[l] = maxUint32
		}

		if lvl.BlockSize != nil {
			lineCap[l] = saturateUint32(*lvl.BlockSize)
		} else {
			var rbw, wbw int64
			if lvl.ReadBW != nil {
				rbw = *lvl.ReadBW
			}
			if lvl.WriteBW != nil {
				wbw = *lvl.WriteBW
			}
			lineCap[l] = saturateUint32(maxInt64(rbw, wbw))
		}
	}

	kept := make([][]bool, levels)
	for l := 0; l < levels; l++ {
		kept[l] = make([]bool, numDataspaces)
		for d := 0; d < numDataspaces; d++ {
			bypassed := false
			if l < len(bypass) && d < len(bypass[l]) {
				bypassed = bypass[l][d]
			}
			kept[l][d] = !bypassed
		}
	}

	return &ArchView{TotalCapacity: totalCap, LineCapacity: lineCap, Kept: kept}, nil
}
