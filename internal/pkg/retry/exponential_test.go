package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestExecute_SucceedsFirstTry(t *testing.T) {
	r := New(fastConfig(), logger.GetGlobalLogger())
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesUntilSuccess(t *testing.T) {
	r := New(fastConfig(), logger.GetGlobalLogger())
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 2
	r := New(cfg, logger.GetGlobalLogger())
	boom := errors.New("boom")
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	permanent := errors.New("permanent")
	cfg := fastConfig()
	cfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, permanent)
	}
	r := New(cfg, logger.GetGlobalLogger())
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancellation(t *testing.T) {
	r := New(fastConfig(), logger.GetGlobalLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(context.Context) error {
		return errors.New("should not matter")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_CappedAtMax(t *testing.T) {
	cfg := fastConfig()
	r := New(cfg, logger.GetGlobalLogger())

	assert.LessOrEqual(t, r.calculateDelay(10), cfg.MaxDelay)
}
