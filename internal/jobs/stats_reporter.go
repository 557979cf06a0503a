package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/devjourney/devjourney-backend/internal/journal/domain"
	"github.com/devjourney/devjourney-backend/internal/logging"
)

const DefaultStatsSchedule = "@every 1m"

// ProjectLister is the read side of the journal the reporter needs.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// TotalsSink receives the store-wide counts.
type TotalsSink interface {
	SetStoreTotals(projects, entries, minutes int)
}

// StatsReporter periodically recomputes store totals and publishes them.
type StatsReporter struct {
	source  ProjectLister
	sink    TotalsSink
	timeout time.Duration
	cron    *cron.Cron
	log     *logrus.Entry
}

func NewStatsReporter(source ProjectLister, sink TotalsSink) *StatsReporter {
	log := logging.Logger().WithField("job", "stats_reporter")
	return &StatsReporter{
		source:  source,
		sink:    sink,
		timeout: 10 * time.Second,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.PrintfLogger(log)),
			cron.Recover(cron.PrintfLogger(log)),
		)),
		log: log,
	}
}

// Start runs the job once, then on schedule. An empty schedule means
// DefaultStatsSchedule.
func (r *StatsReporter) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	if _, err := r.cron.AddFunc(schedule, func() { _ = r.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule stats reporter %q: %w", schedule, err)
	}

	_ = r.RunOnce(context.Background())
	r.cron.Start()
	r.log.WithField("schedule", schedule).Info("stats reporter started")
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (r *StatsReporter) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce recomputes the totals immediately.
func (r *StatsReporter) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	projects, err := r.source.ListProjects(ctx)
	if err != nil {
		r.log.WithError(err).Warn("could not list projects")
		return err
	}

	entries, minutes := 0, 0
	for _, p := range projects {
		entries += len(p.Entries)
		minutes += domain.TotalTime(p.Entries)
	}
	r.sink.SetStoreTotals(len(projects), entries, minutes)

	r.log.WithFields(logrus.Fields{
		"projects": len(projects),
		"entries":  entries,
		"minutes":  minutes,
	}).Debug("store totals refreshed")
	return nil
}
