package exporters

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/jobkeeper/internal/views"
	"github.com/xuri/excelize/v2"
)

// WriteSpreadsheet writes rows as a single-sheet xlsx workbook to w, with a
// bold header row and the fixed column widths of views.SpreadsheetColumns.
func WriteSpreadsheet(w io.Writer, rows []views.SpreadsheetRow) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", SpreadsheetSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(views.SpreadsheetColumns))
	for i, c := range views.SpreadsheetColumns {
		header[i] = c.Header
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SpreadsheetSheet, col, col, c.Width); err != nil {
			return fmt.Errorf("set width of %s: %w", col, err)
		}
	}
	if err := f.SetSheetRow(SpreadsheetSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(views.SpreadsheetColumns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SpreadsheetSheet, "A1", last, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]any, len(r))
		for j, v := range r {
			values[j] = v
		}
		if err := f.SetSheetRow(SpreadsheetSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
