package export

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many days are fetched at once.
const DefaultConcurrency = 50

// Fetcher is the capability the pipeline needs to retrieve raw appointment
// records for a half-open date range, both bounds in mm/dd/yyyy form.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	FetchAppointments(ctx context.Context, beginDate, endDate string) ([]map[string]any, error)
}

// Pipeline exports appointments for a date range, one CSV artifact per day
// that had data. The logger is injected so runs (and tests) don't share
// global log state.
type Pipeline struct {
	Fetcher Fetcher
	BaseDir string
	Logger  *slog.Logger
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// ExportDay fetches one day's appointments and writes its artifact. Failures
// are fully absorbed here: a failed fetch or write is logged and the method
// returns, so one bad day (rate limit, transient 5xx, malformed payload)
// never aborts sibling days in a multi-day run. Empty days write no file.
func (p *Pipeline) ExportDay(ctx context.Context, day DateRange) {
	logger := p.logger()
	begin := day.Start.Format(DateLayout)
	end := day.End.Format(DateLayout)

	logger.Info("fetching appointments", "begin", begin, "end", end)

	records, err := p.Fetcher.FetchAppointments(ctx, begin, end)
	if err != nil {
		logger.Error("fetch failed", "begin", begin, "end", end, "error", err)
		return
	}

	rows := Project(records)
	if len(rows) == 0 {
		logger.Info("no appointments found", "begin", begin, "end", end)
		return
	}

	if _, err := Write(logger, rows, day, p.BaseDir); err != nil {
		logger.Error("artifact write failed", "begin", begin, "end", end, "error", err)
	}
}

// Run partitions overall into one-day ranges and exports each over a bounded
// worker pool, returning once every day has completed. Per-day failures are
// absorbed inside ExportDay; anything that still escapes a task is logged
// here without cancelling sibling days.
func (p *Pipeline) Run(ctx context.Context, overall DateRange, concurrency int) error {
	if !overall.Start.Before(overall.End) {
		return fmt.Errorf("export: begin date %s is not before end date %s",
			overall.Start.Format(DateLayout), overall.End.Format(DateLayout))
	}
	if concurrency < 1 {
		return fmt.Errorf("export: concurrency must be at least 1, got %d", concurrency)
	}

	logger := p.logger()
	days := overall.Partition()
	logger.Info("starting export", "range", overall.String(), "days", len(days), "concurrency", concurrency)

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for _, day := range days {
		day := day
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("day export panicked", "range", day.String(), "panic", r)
				}
			}()
			p.ExportDay(ctx, day)
			return nil
		})
	}
	_ = g.Wait() // per-day failures never surface as errors

	logger.Info("all days exported", "days", len(days))
	return nil
}
