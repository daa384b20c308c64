package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailyn/transport/internal/pkg/logger"
	"github.com/trailyn/transport/internal/pkg/models"
)

func testRetrier(t *testing.T, config Config) *Retrier {
	zapLogger, err := logger.InitZapLoggerFromConfig(&models.Config{
		Logger: models.LoggerConfig{Level: "error"},
	}, nil)
	require.NoError(t, err)
	return New(config, zapLogger)
}

func fastConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestExecuteSucceedsFirstAttempt(t *testing.T) {
	r := testRetrier(t, fastConfig())
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	r := testRetrier(t, fastConfig())
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	r := testRetrier(t, fastConfig())
	calls := 0
	transient := errors.New("transient")

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return transient
	})

	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, transient)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
}

func TestExecuteStopsOnNonRetryableError(t *testing.T) {
	config := fastConfig()
	fatal := errors.New("fatal")
	config.RetryableFunc = func(err error) bool {
		return !errors.Is(err, fatal)
	}
	r := testRetrier(t, config)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, fatal)
	assert.NotContains(t, err.Error(), "retry limit exceeded")
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	config := fastConfig()
	config.BaseDelay = time.Hour
	r := testRetrier(t, config)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("transient")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay(t *testing.T) {
	r := testRetrier(t, Config{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		MaxDelay:    3 * time.Second,
		Multiplier:  2.0,
	})

	assert.Equal(t, time.Second, r.calculateDelay(1))
	assert.Equal(t, 2*time.Second, r.calculateDelay(2))
	// Capped by MaxDelay.
	assert.Equal(t, 3*time.Second, r.calculateDelay(3))
	assert.Equal(t, 3*time.Second, r.calculateDelay(4))
}

func TestNewNormalizesConfig(t *testing.T) {
	r := testRetrier(t, Config{MaxAttempts: 0})

	assert.Equal(t, 1, r.config.MaxAttempts)
	assert.NotNil(t, r.config.RetryableFunc)
	assert.True(t, r.config.RetryableFunc(errors.New("anything")))
}
