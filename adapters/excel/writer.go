package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"matrixdiff/domain/compare"
	"matrixdiff/internal/errors"
)

// severityColors maps each severity bucket to its row fill color.
var severityColors = map[compare.Severity]string{
	compare.SeveritySevere:   "FFC7CE", // red
	compare.SeverityModerate: "FFEB9C", // yellow
	compare.SeverityMinor:    "C6EFCE", // light green
	compare.SeverityNew:      "BDD7EE", // light blue
	compare.SeverityRemoved:  "D9D9D9", // gray
	// No Change rows keep the default fill.
}

var reportHeaders = []string{"Code", "Status", "Column", "Q3 Value", "Q4 Value", "Similarity", "Severity"}

// WriteReport writes one category report to the named worksheet, replacing
// it if it already exists: summary block at the top, a header row, then one
// color-coded data row per code.
func (w *Workbook) WriteReport(sheet string, report *compare.Report) error {
	idx, err := w.file.GetSheetIndex(sheet)
	if err != nil {
		return errors.Wrapf(err, "failed to look up sheet %q", sheet)
	}
	if idx != -1 {
		if err := w.file.DeleteSheet(sheet); err != nil {
			return errors.Wrapf(err, "failed to replace sheet %q", sheet)
		}
	}
	if _, err := w.file.NewSheet(sheet); err != nil {
		return errors.Wrapf(err, "failed to create sheet %q", sheet)
	}

	boldStyle, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "failed to create title style")
	}

	// Summary block: title, one labeled line per count, then a blank row.
	if err := w.setCell(sheet, "A1", "SUMMARY"); err != nil {
		return err
	}
	if err := w.file.SetCellStyle(sheet, "A1", "A1", boldStyle); err != nil {
		return errors.Wrapf(err, "failed to style sheet %q title", sheet)
	}

	entries := report.Summary.Entries()
	for i, entry := range entries {
		row := i + 2
		if err := w.setCell(sheet, fmt.Sprintf("A%d", row), entry.Label); err != nil {
			return err
		}
		if err := w.setCell(sheet, fmt.Sprintf("B%d", row), entry.Value); err != nil {
			return err
		}
	}

	headerRow := len(entries) + 3
	for i, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return errors.Wrap(err, "failed to build header cell name")
		}
		if err := w.setCell(sheet, cell, header); err != nil {
			return err
		}
	}
	if err := w.file.SetCellStyle(sheet,
		fmt.Sprintf("A%d", headerRow), fmt.Sprintf("G%d", headerRow), boldStyle); err != nil {
		return errors.Wrapf(err, "failed to style sheet %q header row", sheet)
	}

	fillStyles, err := w.severityStyles()
	if err != nil {
		return err
	}

	for i, r := range report.Rows {
		row := headerRow + 1 + i
		cells := []struct {
			col   string
			value interface{}
		}{
			{"A", r.Code},
			{"B", string(r.Status)},
			{"C", r.Column},
			{"D", r.Q3Value},
			{"E", r.Q4Value},
			{"G", string(r.Severity)},
		}
		for _, c := range cells {
			if err := w.setCell(sheet, fmt.Sprintf("%s%d", c.col, row), c.value); err != nil {
				return err
			}
		}
		if r.Similarity != nil {
			if err := w.setCell(sheet, fmt.Sprintf("F%d", row), *r.Similarity); err != nil {
				return err
			}
		}

		if style, ok := fillStyles[r.Severity]; ok {
			if err := w.file.SetCellStyle(sheet,
				fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), style); err != nil {
				return errors.Wrapf(err, "failed to style row %d of sheet %q", row, sheet)
			}
		}
	}

	widths := []struct {
		start, end string
		width      float64
	}{
		{"A", "A", 14},
		{"B", "C", 18},
		{"D", "E", 50},
		{"F", "F", 10},
		{"G", "G", 20},
	}
	for _, cw := range widths {
		if err := w.file.SetColWidth(sheet, cw.start, cw.end, cw.width); err != nil {
			return errors.Wrapf(err, "failed to set column widths on sheet %q", sheet)
		}
	}

	return nil
}

// setCell writes one cell value, wrapping any failure with its location.
func (w *Workbook) setCell(sheet, cell string, value interface{}) error {
	if err := w.file.SetCellValue(sheet, cell, value); err != nil {
		return errors.Wrapf(err, "failed to write cell %s!%s", sheet, cell)
	}
	return nil
}

// severityStyles builds one fill style per colored severity bucket.
func (w *Workbook) severityStyles() (map[compare.Severity]int, error) {
	styles := make(map[compare.Severity]int, len(severityColors))
	for severity, color := range severityColors {
		style, err := w.file.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create fill style for %s", severity)
		}
		styles[severity] = style
	}
	return styles, nil
}
