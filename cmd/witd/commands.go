package witd

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/arthur-debert/witd/internal/version"
	"github.com/arthur-debert/witd/pkg/cobrax/topics"
	"github.com/arthur-debert/witd/pkg/config"
	"github.com/arthur-debert/witd/pkg/logging"
	"github.com/arthur-debert/witd/pkg/output"
	"github.com/arthur-debert/witd/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// ErrReported is returned when the failure was already shown to the
// operator; callers only need to set the exit status.
var ErrReported = errors.New("error already reported")

// globalFlags holds the persistent flags shared by all commands
type globalFlags struct {
	verbosity  int
	configPath string
	interval   time.Duration
	timeout    time.Duration
	dryRun     bool
	ignore     []string
	format     string
	once       bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "witd [flags] <rule words...>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, flags, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Rule words may look like flags ("make -C DIR"), so flag parsing stops
	// at the first positional argument.
	rootCmd.Flags().SetInterspersed(false)

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&flags.configPath, "config", "c", "", MsgFlagConfig)
	pf.StringVar(&flags.format, "format", "auto", MsgFlagFormat)
	pf.BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.Flags().DurationVarP(&flags.interval, "interval", "i", 0, MsgFlagInterval)
	rootCmd.Flags().DurationVarP(&flags.timeout, "timeout", "t", 0, MsgFlagTimeout)
	rootCmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil, MsgFlagIgnore)
	rootCmd.Flags().BoolVar(&flags.once, "once", false, MsgFlagOnce)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "rules", Title: "RULES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newExamplesCmd(flags))
	rootCmd.AddCommand(newGenConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	helpFS, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		opts := topics.Options{Renderer: topics.NewGlamourRenderer()}
		if !stdoutIsTerminal() {
			opts.Renderer = topics.NewPlainGlamourRenderer()
		}
		if err := topics.InitializeWithOptions(rootCmd, helpFS, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// newRenderer builds the output renderer for cmd from the --format flag
func newRenderer(cmd *cobra.Command, flags *globalFlags) (*output.Renderer, error) {
	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return nil, err
	}
	return newRendererFor(cmd, format), nil
}

func newRendererFor(cmd *cobra.Command, format ui.Format) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), format)
}

// loadConfig merges the configuration sources with the flags that were set
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	overrides := map[string]interface{}{}
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("interval") {
		overrides[config.KeyWatchInterval] = flags.interval
	}
	if changed("timeout") {
		overrides[config.KeyWatchTimeout] = flags.timeout
	}
	if changed("ignore") {
		overrides[config.KeyWatchIgnore] = flags.ignore
	}
	if changed("dry-run") {
		overrides[config.KeyWatchDryRun] = flags.dryRun
	}
	if changed("format") {
		overrides[config.KeyOutputFormat] = flags.format
	}

	return config.Load(config.LoadOptions{Path: flags.configPath, Overrides: overrides})
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check <rule words...>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: "  witd check directory ./src do make -C DIR end",
		GroupID: "rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}

			parsed, err := parseRules(args, nil)
			if err != nil {
				_ = renderer.RenderParseError(err)
				return ErrReported
			}
			return renderer.RenderRules(parsed)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newExamplesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "examples",
		Short:   MsgExamplesShort,
		GroupID: "rules",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderExamples()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return fmt.Errorf("help command not found")
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
