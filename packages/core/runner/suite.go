package runner

import "github.com/abelmx/affirm/packages/marker"

// Routine is one registered test function. The registration name is
// also the member name markers attach to.
type Routine struct {
	Name string
	Fn   func() error
}

// Suite is an ordered collection of routines sharing a marker table.
type Suite struct {
	Name     string
	routines []Routine
	markers  *marker.Table
}

// SuiteOption is a functional option for configuring a Suite.
type SuiteOption func(*Suite)

// WithMarkers attaches a pre-loaded marker table to the suite.
func WithMarkers(t *marker.Table) SuiteOption {
	return func(s *Suite) {
		s.markers = t
	}
}

func NewSuite(name string, opts ...SuiteOption) *Suite {
	s := &Suite{Name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register appends a routine. Order is preserved at run time.
func (s *Suite) Register(name string, fn func() error) {
	s.routines = append(s.routines, Routine{Name: name, Fn: fn})
}

// Len returns the number of registered routines.
func (s *Suite) Len() int {
	return len(s.routines)
}
