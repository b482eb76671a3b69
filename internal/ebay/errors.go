package ebay

import (
	"errors"
	"fmt"
)

// Sentinel errors for the token lifecycle and the Sell API operations.
// Provider failures are reported as *APIError values that unwrap to one of
// these.
var (
	ErrNotConfigured   = errors.New("marketplace credentials not configured")
	ErrNotAuthorized   = errors.New("unauthorized: must complete OAuth flow")
	ErrRefreshFailed   = errors.New("token refresh failed")
	ErrInventoryCreate = errors.New("inventory-create failed")
	ErrOfferCreate     = errors.New("offer-create failed")
	ErrPublish         = errors.New("publish failed")
	ErrWithdraw        = errors.New("withdraw failed")
)

// APIError is a non-2xx response from an eBay endpoint. Body carries the
// provider's raw error payload for diagnosis.
type APIError struct {
	Op         error
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", e.Op, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Op
}

// retryable reports whether a response status is worth another attempt on
// an idempotent call.
func retryable(status int) bool {
	return status == 429 || status >= 500
}
