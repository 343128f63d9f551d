package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/witd/pkg/executor"
	"github.com/stretchr/testify/mock"
)

// RecordingDispatcher records every command line it is asked to run.
// It never spawns a process.
type RecordingDispatcher struct {
	mu       sync.Mutex
	commands []string

	// FailFunc, when set, decides whether a command line fails
	FailFunc func(commandLine string) error
}

// NewRecordingDispatcher creates an empty RecordingDispatcher
func NewRecordingDispatcher() *RecordingDispatcher {
	return &RecordingDispatcher{}
}

// FailWhenContains makes every command line containing substr fail with err
func (d *RecordingDispatcher) FailWhenContains(substr string, err error) *RecordingDispatcher {
	d.FailFunc = func(commandLine string) error {
		if strings.Contains(commandLine, substr) {
			return err
		}
		return nil
	}
	return d
}

// Dispatch implements executor.Dispatcher
func (d *RecordingDispatcher) Dispatch(ctx context.Context, commandLine string) (executor.Result, error) {
	d.mu.Lock()
	d.commands = append(d.commands, commandLine)
	n := len(d.commands)
	d.mu.Unlock()

	result := executor.Result{
		ID:          fmt.Sprintf("dispatch-%d", n),
		CommandLine: commandLine,
	}
	if program, args, err := executor.SplitCommandLine(commandLine); err == nil {
		result.Program = program
		result.Args = args
	}

	if d.FailFunc != nil {
		if err := d.FailFunc(commandLine); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Commands returns a copy of the recorded command lines
func (d *RecordingDispatcher) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.commands...)
}

// Count returns the number of recorded dispatches
func (d *RecordingDispatcher) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.commands)
}

// Reset forgets the recorded command lines
func (d *RecordingDispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commands = nil
}

// MockDispatcher is a testify mock implementing executor.Dispatcher
type MockDispatcher struct {
	mock.Mock
}

// Dispatch implements executor.Dispatcher
func (m *MockDispatcher) Dispatch(ctx context.Context, commandLine string) (executor.Result, error) {
	args := m.Called(ctx, commandLine)
	return args.Get(0).(executor.Result), args.Error(1)
}
