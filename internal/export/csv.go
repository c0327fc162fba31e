package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"textminer/internal/frequency"
)

// writeCSV writes the table as a two-column CSV with a word,total header.
func writeCSV(path string, rows frequency.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"word", "total"})
	for _, e := range rows {
		records = append(records, []string{e.Token, strconv.Itoa(e.Total)})
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
