package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/arthur-debert/witd/pkg/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dispatcher runs one fully rendered command line
type Dispatcher interface {
	Dispatch(ctx context.Context, commandLine string) (Result, error)
}

// Result describes one dispatch. It is filled as far as the dispatch got,
// so a failed dispatch still carries its ID and command line.
type Result struct {
	ID          string        `json:"id"`
	CommandLine string        `json:"command_line"`
	Program     string        `json:"program"`
	Args        []string      `json:"args"`
	Stdout      string        `json:"stdout,omitempty"`
	Stderr      string        `json:"stderr,omitempty"`
	ExitCode    int           `json:"exit_code"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	DryRun      bool          `json:"dry_run,omitempty"`
}

// Options configures a ProcessDispatcher
type Options struct {
	// Timeout bounds each dispatch. Zero waits for the child forever.
	Timeout time.Duration

	// DryRun logs the command line without spawning anything
	DryRun bool

	// Output receives the captured stdout of each child. Defaults to os.Stdout.
	Output io.Writer

	// ErrOutput receives the captured stderr of each child. Defaults to os.Stderr.
	ErrOutput io.Writer

	// Dir is the working directory of children. Empty uses the current one.
	Dir string

	// Env is appended to the current environment of children
	Env []string

	Logger *zerolog.Logger
}

// ProcessDispatcher spawns a child process per dispatch
type ProcessDispatcher struct {
	timeout   time.Duration
	dryRun    bool
	output    io.Writer
	errOutput io.Writer
	dir       string
	env       []string
	logger    zerolog.Logger
}

// NewProcessDispatcher creates a dispatcher from opts
func NewProcessDispatcher(opts Options) *ProcessDispatcher {
	d := &ProcessDispatcher{
		timeout:   opts.Timeout,
		dryRun:    opts.DryRun,
		output:    opts.Output,
		errOutput: opts.ErrOutput,
		dir:       opts.Dir,
		env:       opts.Env,
	}
	if d.output == nil {
		d.output = os.Stdout
	}
	if d.errOutput == nil {
		d.errOutput = os.Stderr
	}
	if opts.Logger != nil {
		d.logger = *opts.Logger
	} else {
		d.logger = logging.GetLogger("executor")
	}
	return d
}

// SplitCommandLine splits a command line into a program and its arguments.
// Splitting is on whitespace only; quotes are kept as part of the words.
func SplitCommandLine(commandLine string) (string, []string, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return "", nil, errors.New(errors.ErrEmptyCommand, "command line is empty")
	}
	return fields[0], fields[1:], nil
}

// Dispatch runs commandLine and waits for it to finish
func (d *ProcessDispatcher) Dispatch(ctx context.Context, commandLine string) (Result, error) {
	result := Result{
		ID:          uuid.NewString(),
		CommandLine: commandLine,
		StartedAt:   time.Now(),
	}

	program, args, err := SplitCommandLine(commandLine)
	if err != nil {
		return result, err
	}
	result.Program = program
	result.Args = args

	logging.LogDispatch(d.logger, result.ID, program, args)

	if d.dryRun {
		d.logger.Info().
			Str("id", result.ID).
			Str("command", commandLine).
			Msg("Dry run mode - command would be executed")
		result.DryRun = true
		return result, nil
	}

	runCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, program, args...)
	cmd.Dir = d.dir
	if len(d.env) > 0 {
		cmd.Env = append(os.Environ(), d.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result.Duration = time.Since(result.StartedAt)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr != nil {
		return result, d.classify(ctx, runCtx, &result, runErr)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return result, errors.Newf(errors.ErrDispatchOutput,
			"output of %s is not valid UTF-8", program).
			WithDetail("id", result.ID)
	}

	d.surface(result)

	d.logger.Debug().
		Str("id", result.ID).
		Str("command", commandLine).
		Dur("duration", result.Duration).
		Msg("Command executed successfully")

	return result, nil
}

// classify turns the error of cmd.Run into a coded error
func (d *ProcessDispatcher) classify(ctx, runCtx context.Context, result *Result, runErr error) error {
	if ctx.Err() != nil {
		return errors.Wrapf(ctx.Err(), errors.ErrDispatchCancel,
			"%s was cancelled", result.Program).
			WithDetail("id", result.ID)
	}

	if stderrors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return errors.Wrapf(runErr, errors.ErrDispatchTimeout,
			"%s did not finish within %s", result.Program, d.timeout).
			WithDetail("id", result.ID)
	}

	var exitErr *exec.ExitError
	if stderrors.As(runErr, &exitErr) {
		// The child ran, so its output is still shown.
		d.surface(*result)
		return errors.Wrapf(runErr, errors.ErrDispatchExit,
			"%s exited with status %d", result.Program, result.ExitCode).
			WithDetail("id", result.ID).
			WithDetail("exit_code", result.ExitCode)
	}

	return errors.Wrapf(runErr, errors.ErrDispatchStart,
		"failed to start %s", result.Program).
		WithDetail("id", result.ID)
}

// surface writes the captured output of a finished child
func (d *ProcessDispatcher) surface(result Result) {
	if result.Stdout != "" {
		if _, err := io.WriteString(d.output, result.Stdout); err != nil {
			d.logger.Warn().Err(err).Str("id", result.ID).Msg("Failed to write command output")
		}
	}
	if result.Stderr != "" {
		if _, err := io.WriteString(d.errOutput, result.Stderr); err != nil {
			d.logger.Warn().Err(err).Str("id", result.ID).Msg("Failed to write command stderr")
		}
	}
}
