package tracker

import (
	"context"

	"github.com/arthur-debert/witd/pkg/datastore"
	"github.com/arthur-debert/witd/pkg/executor"
	"github.com/arthur-debert/witd/pkg/logging"
	"github.com/arthur-debert/witd/pkg/rules"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/rs/zerolog"
)

// Report summarizes one Execute call
type Report struct {
	// Observed is the number of descriptors handed in
	Observed int `json:"observed"`

	// Eligible is the number of descriptors that changed
	Eligible int `json:"eligible"`

	// Dispatches holds one result per attempted dispatch, failed ones included
	Dispatches []executor.Result `json:"dispatches"`

	// Failures holds the errors of failed dispatches, in order
	Failures []error `json:"-"`

	// Skipped counts dispatches not attempted because the context ended
	Skipped int `json:"skipped,omitempty"`
}

// Changed reports whether the cycle saw any eligible descriptor
func (r Report) Changed() bool {
	return r.Eligible > 0
}

// Tracker holds the change baseline of one rule
type Tracker struct {
	rule       types.Rule
	store      datastore.Store
	dispatcher executor.Dispatcher
	logger     zerolog.Logger
}

// New creates a Tracker. A nil store gets a fresh MemoryStore, a nil logger
// the "tracker" component logger.
func New(rule types.Rule, store datastore.Store, dispatcher executor.Dispatcher, logger *zerolog.Logger) *Tracker {
	t := &Tracker{
		rule:       rule,
		store:      store,
		dispatcher: dispatcher,
	}
	if t.store == nil {
		t.store = datastore.NewMemoryStore()
	}
	if logger != nil {
		t.logger = *logger
	} else {
		t.logger = logging.GetLogger("tracker")
	}
	t.logger = t.logger.With().Str("root", rule.RootPath).Str("mode", rule.RunMode.String()).Logger()
	return t
}

// Rule returns the rule this tracker serves
func (t *Tracker) Rule() types.Rule {
	return t.rule
}

// Tracked returns the number of paths with a baseline
func (t *Tracker) Tracked() int {
	return t.store.Len()
}

// Execute processes one cycle worth of descriptors. It never fails as a
// whole: dispatch errors are logged and collected in the report.
func (t *Tracker) Execute(ctx context.Context, observed []types.File) Report {
	defer logging.Timed(t.logger, "execute")()

	report := Report{Observed: len(observed)}

	eligible := t.admit(observed)
	report.Eligible = len(eligible)

	t.logger.Debug().
		Int("observed", report.Observed).
		Int("eligible", report.Eligible).
		Msg("Change detection complete")

	if len(eligible) == 0 {
		return report
	}

	switch t.rule.RunMode {
	case types.RunModeFile:
		for i := range eligible {
			if ctx.Err() != nil {
				report.Skipped = len(eligible) - i
				break
			}
			t.dispatch(ctx, &report, &eligible[i])
		}
	default:
		if ctx.Err() != nil {
			report.Skipped = 1
			break
		}
		t.dispatch(ctx, &report, nil)
	}

	if report.Skipped > 0 {
		t.logger.Info().Int("skipped", report.Skipped).Msg("Cycle cancelled, remaining dispatches skipped")
	}

	return report
}

// admit updates the store and returns the eligible descriptors in input order
func (t *Tracker) admit(observed []types.File) []types.File {
	var eligible []types.File
	for _, f := range observed {
		if cached, ok := t.store.Get(f.Path); ok && !cached.IsOlder(f) {
			continue
		}
		t.store.Put(f)
		eligible = append(eligible, f)
		t.logger.Trace().Str("path", f.Path).Msg("File changed")
	}
	return eligible
}

func (t *Tracker) dispatch(ctx context.Context, report *Report, file *types.File) {
	commandLine := rules.RenderRule(t.rule, file)

	result, err := t.dispatcher.Dispatch(ctx, commandLine)
	report.Dispatches = append(report.Dispatches, result)
	if err != nil {
		report.Failures = append(report.Failures, err)
		ev := t.logger.Error().Err(err).Str("command", commandLine)
		if file != nil {
			ev = ev.Str("path", file.Path)
		}
		ev.Msg("Dispatch failed")
		return
	}

	t.logger.Info().
		Str("id", result.ID).
		Str("command", commandLine).
		Msg("Dispatched")
}
