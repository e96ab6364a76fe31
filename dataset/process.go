package dataset

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lemoi18/Text-Normalizer-norwegian/internal/logger"
)

// Result is a record together with its normalized text.
type Result struct {
	Record
	Normalized string `json:"normalized"`
	Recovered  bool   `json:"recovered,omitempty"` // normalization panicked; Normalized is the original text
}

// Changed reports whether normalization altered the text.
func (r Result) Changed() bool {
	return r.Normalized != r.Text
}

// Output returns the record with its text replaced by the normalized text.
func (r Result) Output() Record {
	out := r.Record
	out.Text = r.Normalized
	return out
}

// Process applies fn to the text of every record using at most workers
// goroutines and returns the results in input order. workers < 1 means
// GOMAXPROCS. It stops early and returns ctx.Err() when ctx is canceled.
func Process(ctx context.Context, records []Record, fn func(string) string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = apply(gctx, records[i], fn)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dataset: process: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dataset: process: %w", err)
	}
	return results, nil
}

// apply runs fn on one record. A panic keeps the original text.
func apply(ctx context.Context, rec Record, fn func(string) string) (res Result) {
	res = Result{Record: rec, Normalized: rec.Text}
	defer func() {
		if p := recover(); p != nil {
			logger.FromContext(ctx).Warn("normalization failed, keeping original text",
				"line", rec.Line, "id", rec.ID, "text", preview(rec.Text), "panic", p)
			res.Normalized = rec.Text
			res.Recovered = true
		}
	}()
	res.Normalized = fn(rec.Text)
	return res
}

// preview shortens s to at most 50 runes for log messages.
func preview(s string) string {
	const maxRunes = 50
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
