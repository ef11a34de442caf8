package secure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/fecops/internal/secure"
)

func TestValueRoundTrip(t *testing.T) {
	t.Parallel()

	value := secure.NewValue([]byte("enclave-key-material"))

	buf, err := value.Open()
	require.NoError(t, err)
	assert.Equal(t, "enclave-key-material", buf.String())
	buf.Destroy()

	// The enclave survives buffer destruction and can be opened again.
	buf, err = value.Open()
	require.NoError(t, err)
	assert.Equal(t, "enclave-key-material", buf.String())
	buf.Destroy()
}

func TestValueDestroy(t *testing.T) {
	t.Parallel()

	value := secure.NewValue([]byte("short-lived"))
	value.Destroy()

	_, err := value.Open()
	assert.ErrorIs(t, err, secure.ErrDestroyed)

	// Idempotent.
	value.Destroy()
}
