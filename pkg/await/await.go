// Package await provides polling and sleeping helpers that respect
// context cancellation.
package await

import (
	"context"
	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"time"
)

const (
	DefaultInitialInterval = 50 * time.Millisecond
	DefaultMaxInterval     = time.Second
)

// ErrConditionNotMet is returned by Until when the timeout runs out before
// the condition turns true.
var ErrConditionNotMet = errors.New("condition not met")

// Until polls cond with exponential backoff until it reports true. It
// stops with the condition's own error when cond fails, with
// ErrConditionNotMet when timeout elapses first, and with the context
// error when the context ends. A zero timeout keeps polling until the
// context ends.
func Until(ctx context.Context, timeout time.Duration, cond func() (bool, error)) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = DefaultInitialInterval
	bo.MaxInterval = DefaultMaxInterval
	bo.MaxElapsedTime = timeout

	op := func() error {
		done, err := cond()
		if err != nil {
			return backoff.Permanent(err)
		}
		if !done {
			return ErrConditionNotMet
		}

		return nil
	}

	return errors.WithStack(backoff.Retry(op, backoff.WithContext(bo, ctx)))
}

// Sleep pauses for d. When the context ends first it returns the context
// error right away.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
