package ldse

import "fmt"

// materialize decodes split_id and pack_id against the enumerated option
// tables, applies the selected splitting then packing transform to a
// fresh copy of the initial layout, and validates the line-capacity
// invariant before returning it.
func materialize(shape WorkloadShape, initial *Layouts, av *ArchView, enum *enumeration, splitID, packID uint64) (*Layouts, error) {
	if splitID >= enum.S {
		return nil, newRangeError("split_id out of range", splitID, enum.S)
	}
	if packID >= enum.P {
		return nil, newRangeError("pack_id out of range", packID, enum.P)
	}

	choiceSplit := make(map[slot]int, len(enum.Slots))
	choicePack := make(map[slot]int, len(enum.Slots))

	sid, pid := splitID, packID
	for _, sl := range enum.Slots {
		splitRadix := enum.NSplit[sl.Level][sl.Dataspace]
		if splitRadix == 0 {
			splitRadix = 1
		}
		choiceSplit[sl] = int(sid % uint64(splitRadix))
		sid /= uint64(splitRadix)

		packRadix := enum.NPack[sl.Level][sl.Dataspace]
		if packRadix == 0 {
			packRadix = 1
		}
		choicePack[sl] = int(pid % uint64(packRadix))
		pid /= uint64(packRadix)
	}

	result := initial.clone()

	for _, sl := range enum.Slots {
		l, d := sl.Level, sl.Dataspace
		if enum.NSplit[l][d] == 0 {
			continue
		}
		opt := enum.SplitOptions[l][d][choiceSplit[sl]]
		nest := result.Nests[l][d]
		for rank, s := range opt.Assignment {
			if s == 0 || nest.Intraline[rank]%s != 0 {
				return nil, newLayoutViolationError(fmt.Sprintf(
					"level %d dataspace %d rank %q: split factor %d does not divide intraline %d",
					l, d, rank, s, nest.Intraline[rank]))
			}
			nest.Intraline[rank] /= s
			nest.Interline[rank] *= s
		}
	}

	for _, sl := range enum.Slots {
		l, d := sl.Level, sl.Dataspace
		if enum.NPack[l][d] == 0 {
			continue
		}
		opt := enum.PackOptions[l][d][choicePack[sl]]
		nest := result.Nests[l][d]
		for rank, p := range opt.Assignment {
			if p == 0 || nest.Interline[rank]%p != 0 {
				return nil, newLayoutViolationError(fmt.Sprintf(
					"level %d dataspace %d rank %q: pack factor %d does not divide interline %d",
					l, d, rank, p, nest.Interline[rank]))
			}
			nest.Intraline[rank] *= p
			nest.Interline[rank] /= p
		}
	}

	for l := 0; l < len(av.LineCapacity); l++ {
		for d := range shape.Dataspaces {
			if !av.Kept[l][d] {
				continue
			}
			prod := result.Nests[l][d].IntralineProduct()
			if prod > int(av.LineCapacity[l]) {
				return nil, newLayoutViolationError(fmt.Sprintf(
					"level %d dataspace %d: intraline product %d exceeds line capacity %d",
					l, d, prod, av.LineCapacity[l]))
			}
		}
	}

	return result, nil
}
