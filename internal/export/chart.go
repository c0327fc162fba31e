package export

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"textminer/internal/config"
	"textminer/internal/frequency"
)

// renderChart renders a PNG bar chart of the given rows. Callers are
// expected to cap rows at the configured chart limit; a full table makes
// the x axis unreadable.
func renderChart(path string, rows frequency.Table, cfg config.ExportConfig) error {
	bars := make([]chart.Value, len(rows))
	for i, e := range rows {
		bars[i] = chart.Value{Label: e.Token, Value: float64(e.Total)}
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Top tokens (frequency >= %d)", cfg.Threshold),
		Width:    cfg.ChartWidth,
		Height:   cfg.ChartHeight,
		BarWidth: 18,
		XAxis: chart.Style{
			TextRotationDegrees: 60,
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
