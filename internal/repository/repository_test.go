package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	oid, err := ParseID(DriversCollection, "65a1f0c2e4b0a1b2c3d4e5f6")
	require.NoError(t, err)
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", oid.Hex())

	_, err = ParseID(DriversCollection, "not-an-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidID)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, DriversCollection, storeErr.Collection)
}

func TestStoreError_PassesCauseMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap("list", BookingsCollection, cause)

	assert.Equal(t, "connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, Wrap("list", BookingsCollection, nil))
}
