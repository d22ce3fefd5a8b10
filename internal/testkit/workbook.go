package testkit

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a fixture workbook.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// BuildWorkbook writes a .xlsx fixture into dir and returns its path.
func BuildWorkbook(t *testing.T, dir string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet for the first one.
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("rename default sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				t.Fatalf("create sheet %s: %v", sheet.Name, err)
			}
		}
		for r, row := range sheet.Rows {
			for c, val := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(sheet.Name, cell, val); err != nil {
					t.Fatalf("set cell %s!%s: %v", sheet.Name, cell, err)
				}
			}
		}
	}

	path := filepath.Join(dir, "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture workbook: %v", err)
	}
	return path
}

// SnapshotSheet builds a standard two-column snapshot sheet with a header
// row followed by (code, note) pairs.
func SnapshotSheet(name, codeHeader, noteHeader string, records [][2]string) Sheet {
	rows := [][]interface{}{{codeHeader, noteHeader}}
	for _, rec := range records {
		rows = append(rows, []interface{}{rec[0], rec[1]})
	}
	return Sheet{Name: name, Rows: rows}
}
