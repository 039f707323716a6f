package plugins

import "closedform/internal/solver"

// DefaultModulus is the display modulus applied by plugins that reduce
// large exact results for presentation (currently the combinatorial
// identity). Overridable per solver via Config.
const DefaultModulus = 100000

// Config carries the constructor parameters shared by the plugin set.
// A zero Config is usable; zero fields fall back to defaults.
type Config struct {
	// Modulus reduces answers of the combinatorial subset identity.
	// Defaults to DefaultModulus when <= 0.
	Modulus int64
}

func (c Config) modulus() int64 {
	if c.Modulus <= 0 {
		return DefaultModulus
	}
	return c.Modulus
}

// Ordered returns the canonical plugin set in dispatch priority order.
// The order is fixed here, in one place, rather than accumulated from
// scattered registration calls.
func Ordered(cfg Config) []solver.Plugin {
	return []solver.Plugin{
		&SpectralZeta{},
		&Polynomial{},
		&NumberTheory{},
		&Combinatorial{Modulus: cfg.modulus()},
		&Diophantine{},
		&Sequences{},
		&RootDynamics{},
		&FunctionalEquation{},
	}
}

// NewSolver builds a solver over the canonical plugin set.
func NewSolver(cfg Config, opts ...solver.Option) *solver.Solver {
	return solver.New(Ordered(cfg), opts...)
}
