package uow

import (
	"errors"
	"math/rand/v2"
	"time"

	"stay-pricing/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultRetryBase = 100 * time.Millisecond
)

type retryPolicy struct {
	maxRetries int
	base       time.Duration
	jitter     func(n int64) int64
}

func newRetryPolicy(cfg config.DBConfig) retryPolicy {
	p := retryPolicy{
		maxRetries: max(cfg.TxMaxRetries, 0),
		base:       cfg.TxRetryBase,
		jitter:     rand.Int64N,
	}
	if p.base <= 0 {
		p.base = defaultRetryBase
	}
	return p
}

// backoff doubles per attempt and adds up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(p.jitter(spread))
	}
	return wait
}

func (p retryPolicy) shouldRetry(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryable(err)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
