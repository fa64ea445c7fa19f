package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/videomarkup/internal/config"
)

func TestBackoff_Grows(t *testing.T) {
	require.Equal(t, dbOpenBackoffBase, backoff(0))
	require.Greater(t, backoff(2), backoff(1))
}

func TestSleepCtx_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
}

func TestOpenDBPoolWithRetry_BadDSN(t *testing.T) {
	_, err := OpenDBPoolWithRetry(context.Background(), config.Config{
		DatabaseDSN:     "postgres://%zz",
		DatabaseRetries: 1,
	})
	require.ErrorContains(t, err, "failed to parse DSN")
}
