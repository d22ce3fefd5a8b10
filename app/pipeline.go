package app

import (
	"context"

	"github.com/google/uuid"

	"matrixdiff/adapters/excel"
	"matrixdiff/domain/compare"
	"matrixdiff/internal"
	"matrixdiff/internal/errors"
	"matrixdiff/ports"
)

// Pipeline runs the full comparison: read the four snapshot sheets, score
// semantic drift per common code, classify, and write the annotated report
// sheets back into the workbook.
type Pipeline struct {
	comparer   *compare.Comparer
	categories []Category
	logger     *internal.Logger
}

// NewPipeline creates a pipeline over the default categories.
func NewPipeline(scorer ports.Scorer, thresholds compare.Thresholds, concurrency int) *Pipeline {
	return &Pipeline{
		comparer:   compare.NewComparer(scorer, thresholds, concurrency),
		categories: DefaultCategories(),
		logger:     internal.DefaultLogger,
	}
}

// loadedCategory pairs a category with its two record sets.
type loadedCategory struct {
	category Category
	column   string
	q3, q4   *compare.RecordSet
}

// Run executes the pipeline against one workbook file. Every report is
// computed fully in memory before anything is written, and the workbook is
// saved exactly once, so a failed run never leaves partial output behind.
func (p *Pipeline) Run(ctx context.Context, workbookPath string) error {
	runID := uuid.New().String()[:8]
	p.logger.Info("[pipeline %s] reading workbook %s", runID, workbookPath)

	wb, err := excel.Open(workbookPath)
	if err != nil {
		return err
	}
	defer wb.Close()

	// Load all four record sets up front so schema errors abort the run
	// before any embedding call is made.
	loaded := make([]loadedCategory, 0, len(p.categories))
	for _, cat := range p.categories {
		lc, err := p.load(wb, cat)
		if err != nil {
			return err
		}
		loaded = append(loaded, lc)
	}

	reports := make([]*compare.Report, 0, len(loaded))
	for _, lc := range loaded {
		p.logger.Info("[pipeline %s] comparing %s (%d Q3 codes, %d Q4 codes)",
			runID, lc.category.Name, lc.q3.Len(), lc.q4.Len())

		report, err := p.comparer.Compare(ctx, lc.column, lc.q3, lc.q4)
		if err != nil {
			return errors.Wrapf(err, "comparing category %s", lc.category.Name)
		}
		if err := report.Check(); err != nil {
			return errors.Wrapf(err, "report for category %s is inconsistent", lc.category.Name)
		}
		reports = append(reports, report)
	}

	for i, lc := range loaded {
		if err := wb.WriteReport(lc.category.OutputSheet, reports[i]); err != nil {
			return err
		}
	}
	if err := wb.Save(); err != nil {
		return err
	}

	p.logger.Info("[pipeline %s] done, sheets updated in %s:", runID, workbookPath)
	for _, lc := range loaded {
		p.logger.Info("[pipeline %s]   -> %s", runID, lc.category.OutputSheet)
	}
	return nil
}

func (p *Pipeline) load(wb *excel.Workbook, cat Category) (loadedCategory, error) {
	q3, column, err := wb.ReadRecords(cat.Q3Sheet, cat.CodeAliases, cat.NoteAliases)
	if err != nil {
		return loadedCategory{}, err
	}
	q4, _, err := wb.ReadRecords(cat.Q4Sheet, cat.CodeAliases, cat.NoteAliases)
	if err != nil {
		return loadedCategory{}, err
	}
	return loadedCategory{category: cat, column: column, q3: q3, q4: q4}, nil
}
