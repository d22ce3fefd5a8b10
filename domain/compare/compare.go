package compare

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"matrixdiff/internal/errors"
	"matrixdiff/ports"
)

// Comparer builds a category report from two record sets. Scoring of
// modified notes can run concurrently; rows are index-tagged and written
// back in place, so output order is always the canonical order from
// DiffCodes regardless of call-completion order.
type Comparer struct {
	scorer      ports.Scorer
	thresholds  Thresholds
	concurrency int
}

// NewComparer creates a comparer. concurrency is the maximum number of
// in-flight scoring calls; values below 1 are treated as strictly
// sequential.
func NewComparer(scorer ports.Scorer, thresholds Thresholds, concurrency int) *Comparer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Comparer{scorer: scorer, thresholds: thresholds, concurrency: concurrency}
}

// scoreTask is a deferred scoring call tagged with its target row index.
type scoreTask struct {
	rowIdx   int
	code     string
	old, new string
}

// Compare produces the full report for one category. Every code in the
// union of the two record sets appears exactly once: Q3 codes first in
// sheet order, then Q4-only codes in sheet order. The first scoring error
// cancels outstanding calls and fails the whole comparison.
func (c *Comparer) Compare(ctx context.Context, column string, q3, q4 *RecordSet) (*Report, error) {
	diff := DiffCodes(q3, q4)
	rows := make([]ResultRow, 0, diff.UnionSize())
	var tasks []scoreTask

	for _, code := range q3.Codes() {
		q3Note, _ := q3.Note(code)
		old := NormalizeText(q3Note)

		q4Note, inQ4 := q4.Note(code)
		if !inQ4 {
			rows = append(rows, ResultRow{
				Code:     code,
				Status:   StatusRemoved,
				Column:   column,
				Q3Value:  old,
				Severity: c.thresholds.Classify(StatusRemoved, nil),
			})
			continue
		}

		new := NormalizeText(q4Note)
		row := ResultRow{
			Code:    code,
			Status:  StatusModified,
			Column:  column,
			Q3Value: old,
			Q4Value: new,
		}

		switch {
		case ExactMatch(old, new):
			one := 1.0
			row.Status = StatusNoChange
			row.Similarity = &one
			row.Severity = c.thresholds.Classify(StatusNoChange, &one)
		case old == "" || new == "":
			// One side empty: similarity is undefined, classified
			// conservatively. Both-empty is caught by ExactMatch above.
			row.Severity = c.thresholds.Classify(StatusModified, nil)
		default:
			tasks = append(tasks, scoreTask{rowIdx: len(rows), code: code, old: old, new: new})
		}
		rows = append(rows, row)
	}

	for _, code := range diff.Added {
		q4Note, _ := q4.Note(code)
		rows = append(rows, ResultRow{
			Code:     code,
			Status:   StatusNew,
			Column:   column,
			Q4Value:  NormalizeText(q4Note),
			Severity: c.thresholds.Classify(StatusNew, nil),
		})
	}

	if err := c.scoreAll(ctx, rows, tasks); err != nil {
		return nil, err
	}

	return &Report{
		Column:  column,
		Rows:    rows,
		Summary: BuildSummary(rows, q3.Len()),
	}, nil
}

// scoreAll runs the deferred scoring tasks with bounded concurrency and
// fills in similarity and severity on the tagged rows.
func (c *Comparer) scoreAll(ctx context.Context, rows []ResultRow, tasks []scoreTask) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			sim, err := c.scorer.Score(gctx, task.old, task.new)
			if err != nil {
				return errors.Wrapf(err, "scoring code %q", task.code)
			}
			rounded := roundSimilarity(sim)
			// Only an exact match may report 1.0. A scored row is not an
			// exact match, so near-1.0 scores (raw or after rounding) are
			// pinned just below the top band.
			if rounded >= 1.0 {
				rounded = 0.9999
			}
			rows[task.rowIdx].Similarity = &rounded
			rows[task.rowIdx].Severity = c.thresholds.Classify(StatusModified, &rounded)
			return nil
		})
	}
	return g.Wait()
}

// roundSimilarity keeps four decimal places so the classified value is the
// value shown on the sheet.
func roundSimilarity(sim float64) float64 {
	return math.Round(sim*10000) / 10000
}
