package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bankledger-backend/internal/domain"
)

// DefaultStoreTimeout bounds every backing-store call made by a service; a
// slow store surfaces as ErrStoreUnavailable, never as a hang.
const DefaultStoreTimeout = 5 * time.Second

// balanceRetries bounds internal retries on optimistic-concurrency conflicts
// before the conflict is surfaced to the caller.
const balanceRetries = 3

func withStoreTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// mapStoreErr translates store-level failures into the ledger taxonomy.
// notFound is the sentinel substituted for a missing row; domain sentinels
// pass through untouched so repositories may return them directly.
func mapStoreErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return notFound
	case errors.Is(err, domain.ErrConflict):
		return domain.ErrConflict
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: store call timed out", domain.ErrStoreUnavailable)
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
}
