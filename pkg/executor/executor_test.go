package executor_test

import (
	"bytes"
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/arthur-debert/witd/pkg/executor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires unix tools")
	}
}

func newDispatcher(opts executor.Options) (*executor.ProcessDispatcher, *bytes.Buffer) {
	var out bytes.Buffer
	logger := zerolog.Nop()
	opts.Output = &out
	opts.ErrOutput = &bytes.Buffer{}
	opts.Logger = &logger
	return executor.NewProcessDispatcher(opts), &out
}

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantProg string
		wantArgs []string
	}{
		{"program only", "make", "make", []string{}},
		{"program and args", "cp ./a.txt ./out/a.txt", "cp", []string{"./a.txt", "./out/a.txt"}},
		{"extra whitespace", "  echo \t hi  ", "echo", []string{"hi"}},
		{"quotes are not special", `echo "HI there"`, "echo", []string{`"HI`, `there"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, args, err := executor.SplitCommandLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProg, prog)
			assert.Equal(t, tt.wantArgs, args)
		})
	}

	t.Run("empty line", func(t *testing.T) {
		_, _, err := executor.SplitCommandLine("   ")
		assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyCommand))
	})
}

func TestDispatch_CapturesAndSurfacesOutput(t *testing.T) {
	skipOnWindows(t)
	d, out := newDispatcher(executor.Options{})

	result, err := d.Dispatch(context.Background(), "echo hello world")
	require.NoError(t, err)

	assert.Equal(t, "hello world\n", result.Stdout)
	assert.Equal(t, "hello world\n", out.String())
	assert.Equal(t, "echo", result.Program)
	assert.Equal(t, []string{"hello", "world"}, result.Args)
	assert.Equal(t, 0, result.ExitCode)
	assert.NotEmpty(t, result.ID)
}

func TestDispatch_EachDispatchHasOwnID(t *testing.T) {
	skipOnWindows(t)
	d, _ := newDispatcher(executor.Options{})

	a, err := d.Dispatch(context.Background(), "true")
	require.NoError(t, err)
	b, err := d.Dispatch(context.Background(), "true")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestDispatch_StartFailure(t *testing.T) {
	d, out := newDispatcher(executor.Options{})

	result, err := d.Dispatch(context.Background(), "witd-no-such-program-xyz --flag")
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrDispatchStart))
	assert.Equal(t, "witd-no-such-program-xyz", result.Program)
	assert.Empty(t, out.String())
}

func TestDispatch_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	d, _ := newDispatcher(executor.Options{})

	result, err := d.Dispatch(context.Background(), "false")
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrDispatchExit))
	assert.Equal(t, 1, result.ExitCode)
}

func TestDispatch_EmptyCommand(t *testing.T) {
	d, _ := newDispatcher(executor.Options{})

	result, err := d.Dispatch(context.Background(), "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyCommand))
	assert.NotEmpty(t, result.ID)
	assert.Empty(t, result.Program)
}

func TestDispatch_Timeout(t *testing.T) {
	skipOnWindows(t)
	d, _ := newDispatcher(executor.Options{Timeout: 50 * time.Millisecond})

	_, err := d.Dispatch(context.Background(), "sleep 5")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDispatchTimeout))
}

func TestDispatch_ParentCancelled(t *testing.T) {
	skipOnWindows(t)
	d, _ := newDispatcher(executor.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := d.Dispatch(ctx, "sleep 5")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDispatchCancel))
	assert.Equal(t, result.ID, errors.GetErrorDetails(err)["id"])
}

func TestDispatch_DryRun(t *testing.T) {
	d, out := newDispatcher(executor.Options{DryRun: true})

	result, err := d.Dispatch(context.Background(), "rm -rf ./build")
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, "rm", result.Program)
	assert.Empty(t, out.String())
}

func TestDispatch_Env(t *testing.T) {
	skipOnWindows(t)
	d, _ := newDispatcher(executor.Options{Env: []string{"WITD_TEST_VALUE=42"}})

	result, err := d.Dispatch(context.Background(), "env")
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "WITD_TEST_VALUE=42")
}
