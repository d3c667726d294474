package ldse

// LayoutNest holds the intraline/interline factor maps for one
// (storage level, dataspace) pair, plus the canonical rank order used for
// every product computation so results are deterministic and diffable.
type LayoutNest struct {
	Intraline map[string]int
	Interline map[string]int
	RankOrder []string
}

func newLayoutNest(order []string) *LayoutNest {
	n := &LayoutNest{
		Intraline: make(map[string]int, len(order)),
		Interline: make(map[string]int, len(order)),
		RankOrder: append([]string(nil), order...),
	}
	return n
}

func (n *LayoutNest) clone() *LayoutNest {
	c := &LayoutNest{
		Intraline: make(map[string]int, len(n.Intraline)),
		Interline: make(map[string]int, len(n.Interline)),
		RankOrder: append([]string(nil), n.RankOrder...),
	}
	for k, v := range n.Intraline {
		c.Intraline[k] = v
	}
	for k, v := range n.Interline {
		c.Interline[k] = v
	}
	return c
}

// IntralineProduct is ∏_r intraline[r] over the nest's canonical rank
// order — the quantity the line-capacity invariant constrains.
func (n *LayoutNest) IntralineProduct() int {
	p := 1
	for _, r := range n.RankOrder {
		p *= n.Intraline[r]
	}
	return p
}

// Layouts is the materialized output: per level, per dataspace, the two
// factor maps, plus per-level port counts and reuse-assumption flags
// passed through unchanged from the caller's layout skeleton, and the
// zero-padding table keyed by rank name.
type Layouts struct {
	Nests            [][]*LayoutNest
	Kept             [][]bool
	Dimensions       []Dimension
	PortCounts       [][]int
	ReuseAssumptions [][]bool
	ZeroPadding      map[string]int
}

func (l *Layouts) clone() *Layouts {
	c := &Layouts{
		Dimensions:       l.Dimensions,
		PortCounts:       l.PortCounts,
		ReuseAssumptions: l.ReuseAssumptions,
		ZeroPadding:      l.ZeroPadding,
	}
	c.Kept = make([][]bool, len(l.Kept))
	for i, row := range l.Kept {
		c.Kept[i] = append([]bool(nil), row...)
	}
	c.Nests = make([][]*LayoutNest, len(l.Nests))
	for l0, row := range l.Nests {
		c.Nests[l0] = make([]*LayoutNest, len(row))
		for d0, nest := range row {
			c.Nests[l0][d0] = nest.clone()
		}
	}
	return c
}
