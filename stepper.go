package gridpath

// Step exposes the per-expansion state of a search.
type Step struct {
	// Index counts expansions starting at 1.
	Index     int
	Current   Coords
	CostSoFar float64
	// Opened lists the cells first discovered by this expansion, in
	// Directions order.
	Opened []Coords
	// OpenCount is the size of the open set once Current is closed.
	OpenCount int
}

// WithTrace registers fn to be called synchronously after every expansion.
// The search still runs to completion before Search returns.
func WithTrace(fn func(Step)) Option {
	return func(options *Options) { options.Trace = fn }
}

// Recorder collects trace steps in order.
type Recorder struct {
	Steps []Step
}

// Option returns a WithTrace option appending to r.
func (r *Recorder) Option() Option {
	return WithTrace(func(step Step) { r.Steps = append(r.Steps, step) })
}

// Order returns the expanded coordinates in expansion order.
func (r *Recorder) Order() []Coords {
	order := make([]Coords, 0, len(r.Steps))
	for _, step := range r.Steps {
		order = append(order, step.Current)
	}
	return order
}
