package types

import (
	"fmt"
	"strings"
)

// RunMode determines how changes are grouped into dispatches
type RunMode int

const (
	// RunModeDirectory runs the command once per cycle with any change
	RunModeDirectory RunMode = iota

	// RunModeFile runs the command once for every changed file
	RunModeFile
)

// RunModeValues returns the run modes in display order
func RunModeValues() []RunMode {
	return []RunMode{RunModeDirectory, RunModeFile}
}

// AllowedOptions returns the substitution tokens that make sense for the run mode.
// The list is only used for examples and lint; it is not enforced.
func (m RunMode) AllowedOptions() []ScriptOption {
	switch m {
	case RunModeDirectory:
		return []ScriptOption{ScriptOptionDirectory}
	case RunModeFile:
		return []ScriptOption{
			ScriptOptionDirectory,
			ScriptOptionExt,
			ScriptOptionName,
			ScriptOptionPath,
		}
	default:
		return nil
	}
}

// Allows reports whether opt is one of the mode's allowed options
func (m RunMode) Allows(opt ScriptOption) bool {
	for _, allowed := range m.AllowedOptions() {
		if allowed == opt {
			return true
		}
	}
	return false
}

// String returns the pretty name of the run mode
func (m RunMode) String() string {
	switch m {
	case RunModeDirectory:
		return "directory"
	case RunModeFile:
		return "file"
	default:
		return fmt.Sprintf("RunMode(%d)", int(m))
	}
}

// RunModeNames returns the pretty names of all run modes joined by sep
func RunModeNames(sep string) string {
	names := make([]string, 0, 2)
	for _, m := range RunModeValues() {
		names = append(names, m.String())
	}
	return strings.Join(names, sep)
}

// MarshalText implements encoding.TextMarshaler
func (m RunMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
