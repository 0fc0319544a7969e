// Package service holds the owner-scoped business operations. Every call
// takes the resolved owner explicitly; there is no ambient identity.
package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"coursework/internal/apperr"
)

// withTimeout bounds a store call with the configured deadline on top of the
// request's own lifetime.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

// mapStoreErr converts timeouts, cancellation and connection-class failures
// into apperr.ErrStoreUnavailable. Taxonomy errors pass through untouched.
func mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, driver.ErrBadConn) {
		return apperr.ErrStoreUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperr.ErrStoreUnavailable
	}
	return err
}
