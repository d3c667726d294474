package ldse

import "fmt"

// Engine is the top-level handle a mapper search holds: one per
// (architecture, mapping, workload) triple. Init runs once and is
// allocating; Materialize is a pure function over the cached enumeration
// and may be called concurrently as long as each caller owns the Layouts
// value it gets back.
type Engine struct {
	shape       WorkloadShape
	av          *ArchView
	initial     *Layouts
	enum        *enumeration
	initialized bool
}

// NewEngine returns an unconfigured Engine. Call Init before any other
// method.
func NewEngine() *Engine {
	return &Engine{}
}

// Init constructs the initial concordant layout and enumerates the
// splitting and packing design spaces from the given architecture,
// mapping, and workload shape. It is the only allocating, non-pure
// operation the engine exposes.
func (e *Engine) Init(arch ArchSpec, mapping Mapping, shape WorkloadShape, skeleton LayoutSkeleton) error {
	if mapping.NumLevels() != len(arch.Levels) {
		return newConfigError(fmt.Sprintf(
			"mapping spans %d storage levels but architecture declares %d", mapping.NumLevels(), len(arch.Levels)))
	}
	if len(shape.Dataspaces) == 0 {
		return newConfigError("workload shape declares no dataspaces")
	}

	av, err := buildArchView(arch, mapping.BypassNest, len(shape.Dataspaces))
	if err != nil {
		return err
	}

	initial, err := buildConcordantLayout(shape, mapping, av)
	if err != nil {
		return err
	}
	initial.PortCounts = skeleton.PortCounts
	initial.ReuseAssumptions = skeleton.ReuseAssumptions

	e.shape = shape
	e.av = av
	e.initial = initial
	e.enum = buildEnumeration(shape, initial, av)
	e.initialized = true
	return nil
}

// SplittingSpaceSize returns S, the size of the splitting cross-product.
func (e *Engine) SplittingSpaceSize() uint64 {
	if !e.initialized {
		return 0
	}
	return e.enum.S
}

// PackingSpaceSize returns P, the size of the packing cross-product.
func (e *Engine) PackingSpaceSize() uint64 {
	if !e.initialized {
		return 0
	}
	return e.enum.P
}

// Materialize reconstructs the layout addressed by (splitID, packID) and
// validates it against the line-capacity invariant. It is pure: repeated
// calls with the same arguments against the same Init always return an
// equal result.
func (e *Engine) Materialize(splitID, packID uint64) (*Layouts, error) {
	if !e.initialized {
		return nil, newConfigError("Init must succeed before Materialize")
	}
	return materialize(e.shape, e.initial, e.av, e.enum, splitID, packID)
}

// InitialLayout exposes the concordant layout built by Init, mainly for
// diagnostics and for testing that the concordant layout was derived
// correctly. Callers must not mutate it.
func (e *Engine) InitialLayout() *Layouts {
	if !e.initialized {
		return nil
	}
	return e.initial
}
