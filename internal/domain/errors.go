package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight metasearch domain.
var (
	// ErrInvalidRequest indicates a search request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider did not respond in time.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderUnavailable indicates a provider is not configured or
	// its credentials could not be used.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrOfferNotFound indicates a providerRef did not resolve to a live
	// offer at its origin provider.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrUnknownProvider indicates a providerRef names a provider that is
	// not registered for offer refresh.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps an error from a provider adapter with the provider's
// identity and whether the failure is worth retrying. Adapters return these
// so the failure reason stays inspectable; the aggregator converts them to
// empty-data signals at its boundary.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether retrying the call might succeed
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable ProviderError.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a retryable ProviderError.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewProviderTimeoutError creates a ProviderError wrapping ErrProviderTimeout.
func NewProviderTimeoutError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderTimeout, Retryable: true}
}

// NewProviderUnavailableError creates a ProviderError wrapping ErrProviderUnavailable.
func NewProviderUnavailableError(provider string) *ProviderError {
	return &ProviderError{Provider: provider, Err: ErrProviderUnavailable}
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsProviderTimeout reports whether err is or wraps ErrProviderTimeout.
func IsProviderTimeout(err error) bool {
	return errors.Is(err, ErrProviderTimeout)
}

// IsOfferNotFound reports whether err is or wraps ErrOfferNotFound.
func IsOfferNotFound(err error) bool {
	return errors.Is(err, ErrOfferNotFound)
}

// WrapInvalidRequest formats a message wrapping ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
