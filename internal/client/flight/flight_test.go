package flight

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunSuccess(t *testing.T) {
	var c Call[string]
	require.Equal(t, StatusIdle, c.Status())

	res, err := c.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "abc123", nil
	})
	require.NoError(t, err)
	require.True(t, res.IsOk())
	require.Equal(t, "abc123", res.Data())
	require.Nil(t, res.Err())
	require.Equal(t, StatusSuccess, c.Status())
}

func TestRunFailureIsTerminalState(t *testing.T) {
	var c Call[string]
	cause := errors.New("boom")

	res, err := c.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "", cause
	})
	require.NoError(t, err, "a failed effect settles, it is not a Run error")
	require.False(t, res.IsOk())
	require.Equal(t, "boom", res.Err().Message)
	require.ErrorIs(t, res.Err().Cause, cause)
	require.Equal(t, StatusError, c.Status())
}

func TestSecondRunRejectedWhileLoading(t *testing.T) {
	var c Call[int]
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	go func() {
		_, _ = c.Run(context.Background(), func(ctx context.Context) (int, error) {
			calls.Add(1)
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started
	_, err := c.Run(context.Background(), func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 2, nil
	})
	require.ErrorIs(t, err, ErrInFlight)
	close(release)

	require.Eventually(t, func() bool { return c.Status() == StatusSuccess }, time.Second, time.Millisecond)
	require.Equal(t, int32(1), calls.Load(), "the second effect must never start")
}

func TestNewRunClearsPreviousResult(t *testing.T) {
	var c Call[string]

	_, err := c.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "first", nil
	})
	require.NoError(t, err)
	require.Equal(t, "first", c.Snapshot().Data())

	// Observe the cleared snapshot from inside the next run.
	res, err := c.Run(context.Background(), func(ctx context.Context) (string, error) {
		snap := c.Snapshot()
		require.False(t, snap.IsOk())
		require.Empty(t, snap.Data())
		return "second", nil
	})
	require.NoError(t, err)
	require.Equal(t, "second", res.Data())
}

func TestErrorThenSuccessRecovers(t *testing.T) {
	var c Call[int]

	_, err := c.Run(context.Background(), func(ctx context.Context) (int, error) {
		return 0, errors.New("down")
	})
	require.NoError(t, err)
	require.Equal(t, StatusError, c.Status())

	res, err := c.Run(context.Background(), func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	require.True(t, res.IsOk())
	require.Equal(t, 7, res.Data())
	require.Equal(t, StatusSuccess, c.Status())
}

func TestIndependentInstances(t *testing.T) {
	var a, b Call[int]
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = a.Run(context.Background(), func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started
	// b has its own single-flight gate; a being in flight does not block it.
	res, err := b.Run(context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Data())
	close(release)
}
