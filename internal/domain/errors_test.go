package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewProviderError("amadeus", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "amadeus")
	assert.False(t, err.Retryable)
}

func TestNewRetryableProviderError(t *testing.T) {
	err := NewRetryableProviderError("kiwi", errors.New("502"))
	assert.True(t, err.Retryable)
}

func TestNewProviderTimeoutError(t *testing.T) {
	err := NewProviderTimeoutError("duffel")

	assert.True(t, IsProviderTimeout(err))
	assert.True(t, err.Retryable)
	assert.Equal(t, "duffel", err.Provider)
}

func TestIsInvalidRequest(t *testing.T) {
	assert.True(t, IsInvalidRequest(WrapInvalidRequest("origin is required")))
	assert.True(t, IsInvalidRequest(fmt.Errorf("outer: %w", ErrInvalidRequest)))
	assert.False(t, IsInvalidRequest(errors.New("something else")))
}

func TestIsOfferNotFound(t *testing.T) {
	wrapped := NewProviderError("duffel", ErrOfferNotFound)
	assert.True(t, IsOfferNotFound(wrapped))
	assert.False(t, IsOfferNotFound(ErrUnknownProvider))
}

func TestWrapInvalidRequest_Formats(t *testing.T) {
	err := WrapInvalidRequest("adults must be at least %d", 1)
	assert.Contains(t, err.Error(), "adults must be at least 1")
}
