package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesSentinelByKind(t *testing.T) {
	err := Conflict("email %s already registered", "a@b.c")

	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "email a@b.c already registered", err.Error())
}

func TestWrappedErrorKeepsKind(t *testing.T) {
	err := fmt.Errorf("create booth: %w", NotFound("expo not found"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "expo not found", Message(err))
}

func TestInternalHidesCauseFromMessage(t *testing.T) {
	cause := errors.New("socket closed")
	err := Internal(cause, "store failure")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store failure", Message(err))
	assert.Contains(t, err.Error(), "socket closed")
}

func TestKindOfUnknownError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "internal error", Message(errors.New("boom")))
}

func TestTimeoutUnwrapsDeadline(t *testing.T) {
	err := Timeout(context.DeadlineExceeded, "store call timed out")

	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
