// Package export writes the frequency table to the output artifacts:
// two CSVs, an Excel workbook, a top-N summary, a bar chart, and a run log.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"textminer/internal/config"
	"textminer/internal/frequency"
)

// Exporter writes pipeline results into the configured output directory.
type Exporter struct {
	cfg config.ExportConfig
	log *zap.Logger
}

// New creates an Exporter. A nil logger is replaced with a no-op logger.
func New(cfg config.ExportConfig, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{cfg: cfg, log: log}
}

// Result describes what a run produced.
type Result struct {
	RunID     string
	Artifacts []string
}

// Export writes every artifact for the given table. The first write failure
// aborts the run; there is no partial-output cleanup.
func (e *Exporter) Export(table frequency.Table, inputPath string) (*Result, error) {
	dir := e.cfg.OutputDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	res := &Result{RunID: uuid.NewString()}
	ge := table.AtLeast(e.cfg.Threshold)

	csvAll := filepath.Join(dir, "token_frequencies_all.csv")
	if err := writeCSV(csvAll, table); err != nil {
		return nil, err
	}
	e.noteArtifact(res, csvAll)

	csvGe := filepath.Join(dir, fmt.Sprintf("token_frequencies_ge_%d.csv", e.cfg.Threshold))
	if err := writeCSV(csvGe, ge); err != nil {
		return nil, err
	}
	e.noteArtifact(res, csvGe)

	xlsx := filepath.Join(dir, "text_mining_results.xlsx")
	if err := writeWorkbook(xlsx, table, ge, e.cfg.Threshold); err != nil {
		return nil, err
	}
	e.noteArtifact(res, xlsx)

	summary := filepath.Join(dir, fmt.Sprintf("summary_top%d.txt", e.cfg.Top))
	if err := writeSummary(summary, table, e.cfg.Top, e.cfg.Threshold, len(ge)); err != nil {
		return nil, err
	}
	e.noteArtifact(res, summary)

	// An empty chart is useless; leave a note instead.
	if len(ge) == 0 {
		note := filepath.Join(dir, "chart_note.txt")
		msg := fmt.Sprintf("No tokens met the threshold of %d, so no chart was generated.\n", e.cfg.Threshold)
		if err := os.WriteFile(note, []byte(msg), 0644); err != nil {
			return nil, fmt.Errorf("failed to write chart note: %w", err)
		}
		e.noteArtifact(res, note)
	} else {
		png := filepath.Join(dir, fmt.Sprintf("top_tokens_ge_%d.png", e.cfg.Threshold))
		if err := renderChart(png, ge.Head(e.cfg.ChartLimit), e.cfg); err != nil {
			return nil, err
		}
		e.noteArtifact(res, png)
	}

	runLog := filepath.Join(dir, "run_log.txt")
	if err := e.writeRunLog(runLog, table, inputPath, res); err != nil {
		return nil, err
	}
	e.noteArtifact(res, runLog)

	return res, nil
}

func (e *Exporter) noteArtifact(res *Result, path string) {
	res.Artifacts = append(res.Artifacts, path)
	e.log.Debug("wrote artifact", zap.String("path", path))
}
