package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitReturnsValue(t *testing.T) {
	f := Start(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestAwaitReturnsError(t *testing.T) {
	boom := errors.New("boom")
	f := Start(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAwaitDeadlineCancelsSlowLoad(t *testing.T) {
	stopped := make(chan struct{})
	f := Start(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(stopped)
		return 0, ctx.Err()
	})

	_, err := f.AwaitDeadline(20 * time.Millisecond)
	assert.ErrorIs(t, err, ErrDeadline)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("load was not cancelled")
	}
}

func TestAwaitDeadlineFastLoad(t *testing.T) {
	f := Start(context.Background(), func(context.Context) (int, error) {
		return 7, nil
	})

	v, err := f.AwaitDeadline(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestAwaitHonoursCallerContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := Start(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCancel(t *testing.T) {
	f := Start(context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	f.Cancel()

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	<-f.Done()
}
