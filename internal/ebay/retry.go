package ebay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxRetries    = 2
	defaultRetryInterval = 200 * time.Millisecond
)

// retryIdempotent runs op with exponential backoff, at most maxRetries extra
// attempts. op marks non-retryable failures with backoff.Permanent. Only
// idempotent calls (token refresh, inventory upsert) may go through here.
//
// When ctx ends between attempts the last attempt's error is kept in the
// chain, so callers still see the provider failure behind the timeout.
func retryIdempotent(
	ctx context.Context,
	maxRetries uint64,
	interval time.Duration,
	op func() error,
) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = interval
	eb.MaxInterval = 10 * interval

	var last error
	err := backoff.Retry(func() error {
		last = op()
		return last
	}, backoff.WithContext(backoff.WithMaxRetries(eb, maxRetries), ctx))

	ctxErr := ctx.Err()
	if err == nil || last == nil || ctxErr == nil || !errors.Is(err, ctxErr) {
		return err
	}
	if errors.Is(last, ctxErr) {
		return last
	}
	return fmt.Errorf("%w: %w", last, err)
}
