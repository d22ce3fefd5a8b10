package excel

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"matrixdiff/domain/compare"
	"matrixdiff/internal"
	"matrixdiff/internal/errors"
)

// Workbook wraps an open .xlsx file for reading record sheets and writing
// report sheets. All reads and writes happen in memory; nothing touches the
// file on disk until Save.
type Workbook struct {
	file   *excelize.File
	path   string
	logger *internal.Logger
}

// Open opens an existing workbook file.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.InvalidInput(fmt.Sprintf("workbook not found: %s", path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	return &Workbook{file: f, path: path, logger: internal.DefaultLogger}, nil
}

// Close releases the underlying file handle.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Save writes the workbook back to its original path in one shot.
func (w *Workbook) Save() error {
	if err := w.file.Save(); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", w.path)
	}
	return nil
}

// ReadRecords reads one worksheet into an ordered record set. The code and
// note columns are resolved against ordered alias lists, case-insensitively
// after header normalization. Returns the record set and the resolved note
// column label (used as the "Column" value on report rows).
func (w *Workbook) ReadRecords(sheet string, codeAliases, noteAliases []string) (*compare.RecordSet, string, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, "", errors.SchemaErrorf("worksheet %q not readable: %v", sheet, err)
	}
	if len(rows) == 0 {
		return nil, "", errors.SchemaErrorf("worksheet %q is empty", sheet)
	}

	headers := normalizeHeaders(rows[0])

	codeIdx, codeCol, err := findColumn(sheet, headers, codeAliases)
	if err != nil {
		return nil, "", err
	}
	noteIdx, noteCol, err := findColumn(sheet, headers, noteAliases)
	if err != nil {
		return nil, "", err
	}

	records := compare.NewRecordSet()
	for i := 1; i < len(rows); i++ {
		code := strings.TrimSpace(cellAt(rows[i], codeIdx))
		if code == "" {
			// Blank code cells carry nothing to compare against.
			continue
		}
		note := cellAt(rows[i], noteIdx)
		if !records.Add(code, note) {
			w.logger.Warn("[excel] sheet %q row %d: duplicate code %q, keeping first occurrence", sheet, i+1, code)
		}
	}

	w.logger.Info("[excel] sheet %q: %d records (code column %q, note column %q)",
		sheet, records.Len(), codeCol, noteCol)
	return records, noteCol, nil
}

// normalizeHeaders trims each header and collapses embedded line breaks to
// spaces, mirroring how the source sheets were authored.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.ReplaceAll(h, "\n", " ")
		h = strings.ReplaceAll(h, "\r", " ")
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

// findColumn resolves a logical field against its accepted header aliases,
// tried in priority order. The error names the sheet and every alias tried.
func findColumn(sheet string, headers, aliases []string) (int, string, error) {
	for _, alias := range aliases {
		for i, header := range headers {
			if strings.EqualFold(strings.TrimSpace(header), strings.TrimSpace(alias)) {
				return i, header, nil
			}
		}
	}
	return 0, "", errors.SchemaErrorf("worksheet %q: none of these columns found: %v (headers: %v)",
		sheet, aliases, headers)
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
