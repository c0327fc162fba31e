// Package pipeline wires the four stages end to end:
// load corpus → normalize/tokenize → count → export.
package pipeline

import (
	"go.uber.org/zap"

	"textminer/internal/config"
	"textminer/internal/corpus"
	"textminer/internal/export"
	"textminer/internal/frequency"
	"textminer/internal/tokenize"
)

// Stats summarizes a completed run.
type Stats struct {
	RunID        string
	TotalTokens  int // occurrences kept after filtering
	UniqueTokens int
	Artifacts    []string
}

// Run executes the pipeline with the given configuration.
func Run(cfg *config.Config, log *zap.Logger) (*Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	text, err := corpus.Load(cfg.Corpus.Input)
	if err != nil {
		return nil, err
	}
	log.Info("corpus loaded",
		zap.String("input", cfg.Corpus.Input),
		zap.Int("bytes", len(text)))

	tokens := tokenize.New(cfg.Tokenizer).Tokens(text)
	table := frequency.Count(tokens)
	log.Info("tokens counted",
		zap.Int("kept", len(tokens)),
		zap.Int("unique", len(table)))

	res, err := export.New(cfg.Export, log).Export(table, cfg.Corpus.Input)
	if err != nil {
		return nil, err
	}
	log.Info("export complete",
		zap.String("run_id", res.RunID),
		zap.Int("artifacts", len(res.Artifacts)))

	return &Stats{
		RunID:        res.RunID,
		TotalTokens:  len(tokens),
		UniqueTokens: len(table),
		Artifacts:    res.Artifacts,
	}, nil
}
