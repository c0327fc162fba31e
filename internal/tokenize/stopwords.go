package tokenize

import (
	"bufio"
	"bytes"
	_ "embed"
	"sort"
	"strings"
)

// defaultStopwordData is the built-in English stopword list, baked into the
// binary so the tool has no runtime data dependency.
//
//go:embed stopwords_en.txt
var defaultStopwordData []byte

// Stopwords is the set of tokens dropped during filtering.
type Stopwords map[string]struct{}

// NewStopwords builds the effective stopword set: the built-in English list
// (unless disabled) plus any extras. Entries are lowercased and trimmed.
func NewStopwords(extras []string, noDefaults bool) Stopwords {
	s := make(Stopwords)
	if !noDefaults {
		scan := bufio.NewScanner(bytes.NewReader(defaultStopwordData))
		for scan.Scan() {
			s.add(scan.Text())
		}
	}
	for _, w := range extras {
		s.add(w)
	}
	return s
}

func (s Stopwords) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w != "" {
		s[w] = struct{}{}
	}
}

// Contains reports whether tok is a stopword.
func (s Stopwords) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Sorted returns the stopwords in lexical order, for display.
func (s Stopwords) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
