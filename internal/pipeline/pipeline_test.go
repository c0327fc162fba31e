package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textminer/internal/config"
)

const fixtureCorpus = `My router keeps dropping the connection. The router was replaced
last month and the connection still drops. Please check my account,
the account shows the wrong order. I can’t track my order.
`

func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(input, []byte(fixtureCorpus), 0644))

	cfg := config.DefaultConfig()
	cfg.Corpus.Input = input
	cfg.Export.OutputDir = filepath.Join(dir, "output")
	cfg.Export.Threshold = 2
	return cfg
}

func TestRun(t *testing.T) {
	cfg := fixtureConfig(t)

	stats, err := Run(cfg, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, stats.RunID)
	assert.Greater(t, stats.UniqueTokens, 0)
	assert.GreaterOrEqual(t, stats.TotalTokens, stats.UniqueTokens)
	assert.Len(t, stats.Artifacts, 6)

	// router appears twice, survives the default filters, and meets the
	// threshold; "the" and "please" are stopwords, "last" is kept.
	data, err := os.ReadFile(filepath.Join(cfg.Export.OutputDir, "token_frequencies_ge_2.csv"))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "router,2")
	assert.Contains(t, text, "account,2")
	assert.Contains(t, text, "order,2")
	assert.NotContains(t, text, "the,")
	assert.NotContains(t, text, "please")
}

func TestRun_MissingInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Corpus.Input = filepath.Join(t.TempDir(), "missing.txt")
	cfg.Export.OutputDir = t.TempDir()

	_, err := Run(cfg, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not found"))
}

func TestRun_UnreadableOutputDir(t *testing.T) {
	cfg := fixtureConfig(t)

	// A file where the output directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg.Export.OutputDir = blocker

	_, err := Run(cfg, nil)
	require.Error(t, err)
}
