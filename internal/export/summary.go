package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"textminer/internal/frequency"
)

// writeSummary writes the quick human-readable top-N table.
func writeSummary(path string, table frequency.Table, top, threshold, geCount int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d tokens:\n", top)
	b.WriteString(formatTable(table.Head(top)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Tokens with total >= %d: %d\n", threshold, geCount)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// formatTable renders rows as two right-aligned columns under a
// word/total header.
func formatTable(rows frequency.Table) string {
	wordWidth := len("word")
	totalWidth := len("total")
	for _, e := range rows {
		if len(e.Token) > wordWidth {
			wordWidth = len(e.Token)
		}
		if w := len(strconv.Itoa(e.Total)); w > totalWidth {
			totalWidth = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s %*s", wordWidth, "word", totalWidth, "total")
	for _, e := range rows {
		fmt.Fprintf(&b, "\n%*s %*d", wordWidth, e.Token, totalWidth, e.Total)
	}
	return b.String()
}
