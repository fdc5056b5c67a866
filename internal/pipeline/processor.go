// Package pipeline orchestrates one document's journey from source
// file to validated structured record. The flow is a small state
// machine: load, attempt AI structuring, repair and validate the
// response, and reconcile with the heuristic extractors. Nothing past
// the loader is fatal; every AI-side failure degrades to the heuristic
// path and is recorded in the result's log.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cvpipe/internal/domain"
	"cvpipe/internal/extract"
	"cvpipe/internal/loader"
	"cvpipe/internal/provider"
	"cvpipe/internal/validate"
)

// Processor runs the extraction pipeline for single documents. Safe
// for concurrent use; the only shared mutable state is the provider
// selection, which the Selector guards itself.
type Processor struct {
	loader    *loader.Loader
	selector  *provider.Selector
	extractor *extract.Extractor
	validator *validate.Validator
	logger    *zap.Logger
}

func New(l *loader.Loader, s *provider.Selector, e *extract.Extractor, v *validate.Validator, logger *zap.Logger) *Processor {
	return &Processor{loader: l, selector: s, extractor: e, validator: v, logger: logger}
}

// Process loads the document at path and structures it. Only loader
// failures (unsupported format, missing or oversized file) are
// returned as errors; every downstream failure is absorbed into the
// result.
func (p *Processor) Process(ctx context.Context, path string) (*domain.ProcessingResult, error) {
	text, format, err := p.loader.Load(path)
	if err != nil {
		return nil, err
	}
	result := p.ProcessText(ctx, text, path)
	result.Format = format
	return result, nil
}

// ProcessText structures already-extracted raw text. It never returns
// an error and never panics outward: the worst outcome is an empty
// record with provenance "error".
func (p *Processor) ProcessText(ctx context.Context, text, source string) (result *domain.ProcessingResult) {
	result = &domain.ProcessingResult{
		ID:          uuid.New(),
		Source:      source,
		CV:          domain.NewStructuredCV(),
		Logs:        []string{},
		RawText:     text,
		ProcessedAt: time.Now().UTC(),
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("pipeline panic", zap.String("source", source), zap.Any("panic", r))
			result.CV = domain.NewStructuredCV()
			result.Validation = nil
			result.Provenance = domain.ProvenanceError
			result.Logs = append(result.Logs, fmt.Sprintf("pipeline panic: %v", r))
		}
	}()

	logf := func(format string, args ...any) {
		result.Logs = append(result.Logs, fmt.Sprintf(format, args...))
	}

	if text == "" {
		logf("%v", domain.ErrExtractionEmpty)
		result.Provenance = domain.ProvenanceHeuristic
		return result
	}
	logf("text extracted (%d characters)", len(text))

	aiCV, backend, err := p.attemptAI(ctx, text, logf)
	if err != nil {
		if !errors.Is(err, domain.ErrProviderUnavailable) {
			p.logger.Warn("ai structuring failed", zap.String("source", source), zap.Error(err))
		}
		logf("falling back to heuristic extraction")
		result.CV = p.extractor.Extract(text)
		result.Provenance = domain.ProvenanceHeuristic
		return result
	}

	report := p.validator.Validate(aiCV)
	result.Validation = report
	if !report.Passed {
		logf("ai output rejected: %s", report.Reason)
		result.CV = p.extractor.Extract(text)
		result.Provenance = domain.ProvenanceHeuristic
		return result
	}
	logf("ai output from %q passed validation (score %.2f)", backend, report.Score)

	missing := aiCV.MissingSections()
	if len(missing) == 0 {
		result.CV = aiCV
		result.Provenance = domain.ProvenanceAI
		return result
	}

	logf("ai output partial, missing: %v", missing)
	heuristicCV := p.extractor.Extract(text)
	merged, filled := Merge(aiCV, heuristicCV)
	logf("merged heuristic values into: %v", filled)
	result.CV = merged
	result.Provenance = domain.ProvenanceMerged
	return result
}

// attemptAI runs the AI structuring path: select a backend, generate,
// repair and decode. The heuristic backend at the end of the chain is
// not an AI result; it reports domain.ErrProviderUnavailable so the
// caller takes the heuristic path with the right provenance.
func (p *Processor) attemptAI(ctx context.Context, text string, logf func(string, ...any)) (*domain.StructuredCV, string, error) {
	gen, err := p.selector.Active(ctx)
	if err != nil {
		logf("no structuring backend available")
		return nil, "", err
	}
	if gen.Name() == "heuristic" {
		logf("heuristic backend active, skipping ai path")
		return nil, "", domain.ErrProviderUnavailable
	}

	logf("structuring via backend %q", gen.Name())
	prompt := provider.BuildStructuringPrompt(text)
	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", domain.ErrProviderTimeout, err)
		}
		logf("backend %q generation failed: %v", gen.Name(), err)
		return nil, "", err
	}

	cv, err := provider.DecodeStructured(raw)
	if err != nil {
		logf("backend %q response unusable: %v", gen.Name(), err)
		return nil, "", err
	}
	return cv, gen.Name(), nil
}
