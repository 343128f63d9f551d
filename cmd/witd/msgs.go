package witd

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Run a command whenever files in a directory change"
	MsgCheckShort      = "Parse rules and show how they will run"
	MsgExamplesShort   = "Print example rules"
	MsgGenConfigShort  = "Print a configuration file with the current settings"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWatching       = "Watching %d rule(s), polling every %s. Press Ctrl-C to stop."
	MsgWatchingDryRun = "Dry run: commands are logged, not executed."
	MsgConfigWritten  = "Wrote configuration to %s"
	MsgVersionFormat  = "witd %s (commit %s, built %s)\n"

	// Error messages
	MsgErrConfigExists = "config file %s already exists"
	MsgErrWriteConfig  = "failed to write config file: %w"
	MsgErrCollector    = "failed to set up file collector: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/witd/config.toml)"
	MsgFlagInterval = "Pause between poll cycles"
	MsgFlagTimeout  = "Stop a command that runs longer than this (0 waits forever)"
	MsgFlagDryRun   = "Log the commands instead of running them"
	MsgFlagIgnore   = "Glob pattern of files to skip (repeatable)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagOnce     = "Run a single poll cycle and exit"
	MsgFlagWrite    = "Write the configuration file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
