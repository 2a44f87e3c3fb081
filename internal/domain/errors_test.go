package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, "catalog \"prod\" not found", ErrNotFound("catalog %q not found", "prod").Error())
	assert.Equal(t, "no token", ErrAuthentication("no token").Error())
	assert.Equal(t, "bad scope", ErrValidation("bad scope").Error())
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrTransport(cause, "GET /catalogs")

	assert.Contains(t, err.Error(), "GET /catalogs")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("scan failed: %w", ErrNotFound("schema %q not found", "sales"))

	var nfe *NotFoundError
	require.ErrorAs(t, wrapped, &nfe)
	assert.Contains(t, nfe.Message, "sales")
}
