package integration

import (
	"errors"
	"time"

	"github.com/farebird/farebird-api/internal/usecase"
)

// assertErr is the generic upstream failure injected into mock providers.
var assertErr = errors.New("upstream unavailable")

// testTimeouts keeps timeout-path tests fast.
var testTimeouts = usecase.Config{
	GlobalTimeout:   300 * time.Millisecond,
	ProviderTimeout: 100 * time.Millisecond,
}
