package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"textminer/internal/frequency"
)

// writeRunLog writes the run log: run identity, input, headline counts,
// the top-N table, and the artifact list. Written last so it can list
// everything the run produced.
func (e *Exporter) writeRunLog(path string, table frequency.Table, inputPath string, res *Result) error {
	ge := table.AtLeast(e.cfg.Threshold)
	now := time.Now().Format("2006-01-02 15:04:05")

	var lines []string
	lines = append(lines,
		"textminer - Run Log",
		strings.Repeat("=", 40),
		fmt.Sprintf("Run ID:        %s", res.RunID),
		fmt.Sprintf("Run timestamp: %s", now),
		fmt.Sprintf("Input file:    %s", inputPath),
		"",
		fmt.Sprintf("Unique tokens (after filtering): %d", len(table)),
		fmt.Sprintf("Tokens with total >= %d: %d", e.cfg.Threshold, len(ge)),
		"",
		fmt.Sprintf("Top %d tokens:", e.cfg.Top),
		formatTable(table.Head(e.cfg.Top)),
		"",
		"Generated outputs:",
	)
	for _, a := range res.Artifacts {
		lines = append(lines, "- "+a)
	}
	lines = append(lines, "- "+path)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
