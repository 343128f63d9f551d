package testutil

import (
	"testing"

	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// AssertErrorCode checks that err is a WitdError carrying code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) bool {
	t.Helper()

	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, code, errors.GetErrorCode(err), msgAndArgs...)
}

// AssertDispatched checks the exact command lines d ran, in order
func AssertDispatched(t *testing.T, d *RecordingDispatcher, want ...string) bool {
	t.Helper()

	if len(want) == 0 {
		return assert.Zero(t, d.Count(), "expected no dispatches, got %v", d.Commands())
	}
	return assert.Equal(t, want, d.Commands())
}
