package watch

import (
	"context"
	"time"

	"github.com/arthur-debert/witd/pkg/datastore"
	"github.com/arthur-debert/witd/pkg/executor"
	"github.com/arthur-debert/witd/pkg/logging"
	"github.com/arthur-debert/witd/pkg/tracker"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultInterval is the pause between cycles when none is configured
const DefaultInterval = 500 * time.Millisecond

// Collector lists the files beneath a root
type Collector interface {
	Collect(root string) ([]types.File, error)
}

// Context pairs a rule with the tracker holding its baseline
type Context struct {
	Rule    types.Rule
	Tracker *tracker.Tracker
}

// NewContexts builds one Context per rule, each with its own store
func NewContexts(rules []types.Rule, dispatcher executor.Dispatcher, logger *zerolog.Logger) []Context {
	contexts := make([]Context, 0, len(rules))
	for _, rule := range rules {
		contexts = append(contexts, Context{
			Rule:    rule,
			Tracker: tracker.New(rule, datastore.NewMemoryStore(), dispatcher, logger),
		})
	}
	return contexts
}

// CycleReport holds the outcome of one rule in one cycle
type CycleReport struct {
	Rule   types.Rule     `json:"rule"`
	Report tracker.Report `json:"report"`
	// Err is set when the root could not be collected
	Err error `json:"-"`
}

// Watcher drives the poll loop
type Watcher struct {
	Contexts  []Context
	Collector Collector

	// Interval is the pause between cycles. Zero means no pause.
	Interval time.Duration

	// MaxCycles stops the loop after that many cycles when positive
	MaxCycles int

	// OnCycle, when set, is called after every cycle
	OnCycle func(cycle int, reports []CycleReport)

	logger zerolog.Logger
}

// New creates a Watcher with DefaultInterval
func New(contexts []Context, collector Collector) *Watcher {
	return &Watcher{
		Contexts:  contexts,
		Collector: collector,
		Interval:  DefaultInterval,
		logger:    logging.GetLogger("watch"),
	}
}

// WithLogger replaces the watcher's logger
func (w *Watcher) WithLogger(logger zerolog.Logger) *Watcher {
	w.logger = logger
	return w
}

// Run polls until ctx is done or MaxCycles cycles have run. It returns
// ctx.Err() when cancelled and nil otherwise.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info().
		Int("rules", len(w.Contexts)).
		Dur("interval", w.Interval).
		Int("maxCycles", w.MaxCycles).
		Msg("Watching")

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for cycle := 1; ; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		reports := w.RunOnce(ctx)
		if w.OnCycle != nil {
			w.OnCycle(cycle, reports)
		}

		if w.MaxCycles > 0 && cycle >= w.MaxCycles {
			w.logger.Debug().Int("cycles", cycle).Msg("Cycle limit reached")
			return nil
		}

		if w.Interval <= 0 {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(w.Interval)
		} else {
			timer.Reset(w.Interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// RunOnce runs a single cycle over every context, in order
func (w *Watcher) RunOnce(ctx context.Context) []CycleReport {
	reports := make([]CycleReport, 0, len(w.Contexts))
	for _, c := range w.Contexts {
		if ctx.Err() != nil {
			break
		}

		files, err := w.Collector.Collect(c.Rule.RootPath)
		if err != nil {
			w.logger.Error().Err(err).Str("root", c.Rule.RootPath).Msg("Failed to collect files, skipping rule this cycle")
			reports = append(reports, CycleReport{Rule: c.Rule, Err: err})
			continue
		}

		reports = append(reports, CycleReport{
			Rule:   c.Rule,
			Report: c.Tracker.Execute(ctx, files),
		})
	}
	return reports
}
