// Package tokenize turns raw corpus text into filtered word tokens.
// The stages mirror the mining pipeline: Unicode normalization, lowercase
// word extraction, then stopword and minimum-length filtering.
package tokenize

import (
	"regexp"
	"strings"

	"textminer/internal/config"
)

// wordPattern extracts lowercase word tokens. Apostrophes inside words are
// kept (don't, it's, can't); everything else is a separator.
var wordPattern = regexp.MustCompile(`[a-z0-9]+(?:'[a-z0-9]+)?`)

// Words splits normalized text into lowercase word tokens.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Tokenizer applies the full normalize → split → filter chain.
type Tokenizer struct {
	minLen int
	stop   Stopwords
}

// New builds a Tokenizer from configuration.
func New(cfg config.TokenizerConfig) *Tokenizer {
	return &Tokenizer{
		minLen: cfg.MinTokenLength,
		stop:   NewStopwords(cfg.ExtraStopwords, cfg.NoDefaultStopwords),
	}
}

// Stopwords exposes the effective stopword set.
func (t *Tokenizer) Stopwords() Stopwords {
	return t.stop
}

// Tokens normalizes, splits, and filters text into the tokens the
// aggregator counts.
func (t *Tokenizer) Tokens(text string) []string {
	words := Words(Normalize(text))
	kept := words[:0]
	for _, w := range words {
		if len(w) < t.minLen {
			continue
		}
		if t.stop.Contains(w) {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}
