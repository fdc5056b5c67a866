// Package provider selects and drives the language-model backends that
// structure raw résumé text. Backends are probed once, in priority
// order, and the first healthy one stays active for the process
// lifetime.
package provider

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"cvpipe/internal/domain"
)

// Generator is one structuring backend.
type Generator interface {
	// Name identifies the backend in logs and provenance.
	Name() string
	// Probe performs a cheap connectivity check.
	Probe(ctx context.Context) error
	// Generate sends the structuring instruction and returns the raw
	// response text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Selector owns the ordered backend chain. The first generator whose
// probe succeeds is cached as the active one; generators later in the
// chain are never consulted again.
type Selector struct {
	generators []Generator
	logger     *zap.Logger

	mu     sync.Mutex
	active Generator
	probed bool
}

func NewSelector(logger *zap.Logger, generators ...Generator) *Selector {
	return &Selector{generators: generators, logger: logger}
}

// Active returns the active generator, probing the chain on first use.
// domain.ErrProviderUnavailable is returned when every probe fails.
func (s *Selector) Active(ctx context.Context) (Generator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.probed {
		if s.active == nil {
			return nil, domain.ErrProviderUnavailable
		}
		return s.active, nil
	}
	s.probed = true

	for _, g := range s.generators {
		if err := g.Probe(ctx); err != nil {
			s.logger.Warn("backend probe failed",
				zap.String("backend", g.Name()),
				zap.Error(err))
			continue
		}
		s.logger.Info("backend selected", zap.String("backend", g.Name()))
		s.active = g
		return g, nil
	}
	return nil, domain.ErrProviderUnavailable
}

// Reselect discards the cached selection so the next Active call probes
// the chain again. Generation failures must not call this; it exists
// for explicit operator-driven re-probes.
func (s *Selector) Reselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
	s.probed = false
}
