package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fastConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 1 * time.Millisecond,
	MaxDelay:     10 * time.Millisecond,
	Multiplier:   2.0,
	JitterFactor: 0,
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	var attempts int32

	err := Do(context.Background(), func() error {
		atomic.AddInt32(&attempts, 1)
		return nil
	}, DefaultConfig)

	assert.NoError(t, err)
	assert.Equal(t, int32(1), attempts)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	var attempts int32
	tempErr := errors.New("temporary error")

	err := Do(context.Background(), func() error {
		count := atomic.AddInt32(&attempts, 1)
		if count < 3 {
			return tempErr
		}
		return nil
	}, fastConfig.WithMaxAttempts(5))

	assert.NoError(t, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_MaxAttemptsExceeded(t *testing.T) {
	var attempts int32
	persistentErr := errors.New("persistent error")

	err := Do(context.Background(), func() error {
		atomic.AddInt32(&attempts, 1)
		return persistentErr
	}, fastConfig)

	assert.ErrorIs(t, err, persistentErr)
	assert.Equal(t, int32(3), attempts)
}

func TestDo_NonRetryableError(t *testing.T) {
	var attempts int32
	fatalErr := errors.New("bad credentials")

	err := Do(context.Background(), func() error {
		atomic.AddInt32(&attempts, 1)
		return fatalErr
	}, fastConfig.WithRetryIf(func(error) bool { return false }))

	assert.ErrorIs(t, err, fatalErr)
	assert.Equal(t, int32(1), attempts)
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var attempts int32

	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	err := Do(ctx, func() error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("temporary error")
	}, Config{
		MaxAttempts:  10,
		InitialDelay: 20 * time.Millisecond,
		MaxDelay:     100 * time.Millisecond,
		Multiplier:   2.0,
		JitterFactor: 0,
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	var attempts int32

	result, err := DoWithResult(context.Background(), func() (string, error) {
		if atomic.AddInt32(&attempts, 1) < 2 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	}, fastConfig)

	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, int32(2), attempts)
}

func TestDoWithResult_SkipsPermanentErrors(t *testing.T) {
	var attempts int32
	inner := errors.New("offer expired")

	_, err := DoWithResult(context.Background(), func() (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, NewPermanent(inner)
	}, fastConfig.WithRetryIf(SkipPermanent))

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, int32(1), attempts)
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))

	inner := errors.New("boom")
	err := NewPermanent(inner)
	assert.True(t, IsPermanent(err))
	assert.False(t, IsPermanent(inner))
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "boom", err.Error())
}
