package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"textminer/internal/frequency"
)

// writeWorkbook writes the results workbook: one sheet with every token and
// one with only the thresholded set.
func writeWorkbook(path string, all, ge frequency.Table, threshold int) error {
	f := excelize.NewFile()
	defer f.Close()

	const allSheet = "all_tokens"
	if err := f.SetSheetName("Sheet1", allSheet); err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	if err := writeSheet(f, allSheet, all); err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	geSheet := fmt.Sprintf("tokens_ge_%d", threshold)
	if _, err := f.NewSheet(geSheet); err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	if err := writeSheet(f, geSheet, ge); err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows frequency.Table) error {
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"word", "total"}); err != nil {
		return err
	}
	for i, e := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{e.Token, e.Total}); err != nil {
			return err
		}
	}
	return nil
}
