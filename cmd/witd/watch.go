package witd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arthur-debert/witd/pkg/executor"
	"github.com/arthur-debert/witd/pkg/filesystem"
	"github.com/arthur-debert/witd/pkg/logging"
	"github.com/arthur-debert/witd/pkg/rules"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/arthur-debert/witd/pkg/ui"
	"github.com/arthur-debert/witd/pkg/watch"
	"github.com/spf13/cobra"
)

// parseRules joins the command line words, splits them on ";;" and parses
// every rule, command line rules first. With no rule at all the empty input
// is parsed so the operator gets the usual error.
func parseRules(args []string, configured []string) ([]types.Rule, error) {
	var raw []string
	if len(args) > 0 {
		raw = append(raw, rules.SplitRules(strings.Join(args, " "))...)
	}
	for _, entry := range configured {
		raw = append(raw, rules.SplitRules(entry)...)
	}

	if len(raw) == 0 {
		_, err := rules.Parse("")
		return nil, err
	}
	return rules.ParseAll(raw)
}

// runWatch is the root command: parse, then poll until interrupted
func runWatch(cmd *cobra.Command, flags *globalFlags, args []string) error {
	logger := logging.GetLogger("witd")

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	renderer := newRendererFor(cmd, format)

	parsed, err := parseRules(args, cfg.Rules)
	if err != nil {
		_ = renderer.RenderParseError(err)
		return ErrReported
	}

	for _, rule := range parsed {
		for _, w := range rules.Lint(rule) {
			logger.Warn().Str("rule", rule.String()).Msg(w.Message)
		}
	}

	collector, err := filesystem.NewCollector(filesystem.Options{Ignore: cfg.Watch.Ignore})
	if err != nil {
		return fmt.Errorf(MsgErrCollector, err)
	}

	dispatcher := executor.NewProcessDispatcher(executor.Options{
		Timeout:   cfg.Watch.Timeout,
		DryRun:    cfg.Watch.DryRun,
		Output:    cmd.OutOrStdout(),
		ErrOutput: cmd.ErrOrStderr(),
	})

	w := watch.New(watch.NewContexts(parsed, dispatcher, nil), collector)
	w.Interval = cfg.Watch.Interval
	if flags.once {
		w.MaxCycles = 1
	}
	w.OnCycle = func(cycle int, reports []watch.CycleReport) {
		if err := renderer.RenderCycle(cycle, reports); err != nil {
			logger.Warn().Err(err).Msg("Failed to render cycle")
		}
	}

	if !flags.once && format != ui.FormatJSON {
		_ = renderer.RenderMessage("Muted", fmt.Sprintf(MsgWatching, len(parsed), cfg.Watch.Interval))
		if cfg.Watch.DryRun {
			_ = renderer.RenderMessage("Warning", MsgWatchingDryRun)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("Stopped")
		return nil
	}
	return err
}
