// SPDX-License-Identifier: MIT

package fci

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lattice/matrix"
)

// Option configures basis enumeration and the solver.
// Option constructors panic on nonsensical values; algorithms never do.
type Option func(*config)

type config struct {
	spin    *int // nil ⇒ no m_s filter
	workers int
	method  matrix.Method
	logger  *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		method:  matrix.MethodLAPACK,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSpin keeps only determinants whose spin projection m_s equals ms.
// A target no determinant can reach yields an empty basis, not an error.
func WithSpin(ms int) Option {
	return func(c *config) { c.spin = &ms }
}

// WithWorkers sets how many goroutines fill Hamiltonian rows. n ≤ 1 builds sequentially.
// Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("fci: WithWorkers(n) requires n >= 0")
	}
	return func(c *config) { c.workers = n }
}

// WithMethod selects the eigensolver kernel.
func WithMethod(m matrix.Method) Option {
	if m != matrix.MethodLAPACK && m != matrix.MethodJacobi {
		panic("fci: WithMethod: unknown method")
	}
	return func(c *config) { c.method = m }
}

// WithLogger routes engine debug logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fci: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
