package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"cvpipe/internal/extract"
)

// HeuristicGenerator is the terminal backend of the chain. It runs the
// deterministic field extractors in-process, so its probe always
// succeeds and its output is always valid JSON.
type HeuristicGenerator struct {
	extractor *extract.Extractor
}

func NewHeuristicGenerator(extractor *extract.Extractor) *HeuristicGenerator {
	return &HeuristicGenerator{extractor: extractor}
}

func (g *HeuristicGenerator) Name() string { return "heuristic" }

func (g *HeuristicGenerator) Probe(ctx context.Context) error { return nil }

func (g *HeuristicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	cv := g.extractor.Extract(PromptPayload(prompt))
	buf, err := json.Marshal(cv)
	if err != nil {
		return "", fmt.Errorf("marshaling heuristic record: %w", err)
	}
	return string(buf), nil
}
