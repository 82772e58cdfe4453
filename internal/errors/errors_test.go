package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := NewValidationError("direction", "Sideways", "must be Buy or Sell")
	assert.ErrorIs(t, err, ErrInputValidation)
	assert.Contains(t, err.Error(), "direction")
	assert.Contains(t, err.Error(), "Sideways")
}

func TestStoreErrorUnwraps(t *testing.T) {
	err := NewStoreError("trade", "get", ErrTradeNotFound)
	assert.ErrorIs(t, err, ErrTradeNotFound)
	assert.Contains(t, err.Error(), "trade")
	assert.Contains(t, err.Error(), "get")
}

func TestWrapPreservesChain(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))

	err := Wrap(ErrDatabaseError, "store unavailable")
	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "store unavailable")

	wrapped := Wrapf(ErrConfigInvalid, "unknown log level %q", "loud")
	assert.ErrorIs(t, wrapped, ErrConfigInvalid)
	assert.Contains(t, wrapped.Error(), "loud")
}
