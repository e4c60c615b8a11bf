package review

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tmorelli/nitpick/internal/catalog"
	"github.com/tmorelli/nitpick/internal/gitctx"
)

// ContentReader supplies the target-side content of a changed file.
type ContentReader interface {
	ReadBlob(path string, status gitctx.ChangeStatus) (string, error)
}

// Progress is an advisory callback invoked as each file's analysis
// completes. It must not influence analysis results.
type Progress func(done, total int, path string)

// Options tunes an engine run.
type Options struct {
	// Workers bounds the analysis pool; 0 means GOMAXPROCS.
	Workers  int
	Progress Progress
}

// Run analyzes every file in the change set against the catalog and
// aggregates the results. The worker pool fans out per file and joins
// fully before aggregation runs, so the report always covers the whole
// set. A file whose blob cannot be read is skipped with a warning;
// other errors are not produced by analysis itself.
//
// Cancellation via ctx stops scheduling new files; analyses already in
// flight finish and their results are discarded with the run.
func Run(ctx context.Context, cs *gitctx.ChangeSet, cat *catalog.Catalog, reader ContentReader, opts Options) (*Report, error) {
	start := time.Now()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	total := len(cs.Files)
	batches := make([][]Finding, total)
	skips := make([]string, total)

	var done int
	var progressMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, fc := range cs.Files {
		i, fc := i, fc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := reader.ReadBlob(fc.Path, fc.Status)
			if err != nil {
				skips[i] = fmt.Sprintf("skipped %s: %v", fc.Path, err)
			} else {
				batches[i] = Analyze(fc, content, cat.RulesFor(fc.Language))
			}

			if opts.Progress != nil {
				progressMu.Lock()
				done++
				opts.Progress(done, total, fc.Path)
				progressMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Cancelled mid-run: in-flight files finished, but the partial
		// result set is discarded rather than aggregated.
		return nil, err
	}

	report := Aggregate(batches, total)
	report.SourceRef = cs.SourceRef
	report.TargetRef = cs.TargetRef
	report.DurationMs = time.Since(start).Milliseconds()

	for _, s := range cs.Skipped {
		report.Warnings = append(report.Warnings, fmt.Sprintf("skipped %s: %s", s.Path, s.Reason))
	}
	for _, s := range skips {
		if s != "" {
			report.Warnings = append(report.Warnings, s)
		}
	}
	report.SkippedFiles = len(report.Warnings)
	return report, nil
}
