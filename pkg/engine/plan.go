package engine

// Plan is the ordered set of packages a run has decided to build. Entries
// are appended in discovery order; because the resolver appends a package
// before descending into its dependencies, dependencies land after their
// dependents. Consumers must therefore install in reverse insertion order,
// which [Plan.InstallOrder] provides.
//
// A Plan belongs to exactly one run and is never shared.
type Plan struct {
	names []string
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// Add appends a package in discovery order. The resolver guarantees
// uniqueness through the store existence check; Add itself does not
// deduplicate.
func (p *Plan) Add(name string) {
	p.names = append(p.names, name)
}

// Names returns the packages in discovery order.
func (p *Plan) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// InstallOrder returns the packages in dependency-first order: the reverse
// of discovery order, so every dependency precedes the packages that
// declare it (for tree-shaped or cycle-collapsed graphs).
func (p *Plan) InstallOrder() []string {
	out := make([]string, len(p.names))
	for i, n := range p.names {
		out[len(p.names)-1-i] = n
	}
	return out
}

// Len returns the number of planned packages.
func (p *Plan) Len() int { return len(p.names) }

// Empty reports whether nothing was planned.
func (p *Plan) Empty() bool { return len(p.names) == 0 }
