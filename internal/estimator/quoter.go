package estimator

import (
	"context"
	"log/slog"
	"sync"

	"stay-pricing/internal/domain/pricing"
)

type Quote struct {
	Key           string
	Summary       pricing.Summary
	Authoritative bool
	// Err is set when the service call failed and Summary is still the estimate.
	Err error
}

// Quoter shows an estimate at once and replaces it with the service result when that
// result still matches the most recent request. Older responses are dropped on arrival.
type Quoter struct {
	estimator *Estimator
	client    CalculationClient

	mu      sync.Mutex
	latest  string
	current Quote
}

func NewQuoter(estimator *Estimator, client CalculationClient) *Quoter {
	return &Quoter{estimator: estimator, client: client}
}

// Quote returns the local estimate and a channel that yields the applied result.
// The channel is closed without a value when a newer request superseded this one.
func (q *Quoter) Quote(ctx context.Context, target pricing.Target, start, end pricing.Date) (Quote, <-chan Quote, error) {
	r, err := pricing.NewRange(start, end)
	if err != nil {
		return Quote{}, nil, err
	}
	summary, err := q.estimator.Estimate(target, r.Start, r.End)
	if err != nil {
		return Quote{}, nil, err
	}

	estimate := Quote{Key: requestKey(target, r), Summary: summary}
	q.mu.Lock()
	q.latest = estimate.Key
	q.current = estimate
	q.mu.Unlock()

	out := make(chan Quote, 1)
	go func() {
		defer close(out)
		result, callErr := q.calculate(ctx, target, r)

		q.mu.Lock()
		defer q.mu.Unlock()
		if q.latest != estimate.Key {
			slog.Debug("discarding stale quote", "key", estimate.Key, "latest", q.latest)
			return
		}
		if callErr != nil {
			slog.Warn("calculation service failed, keeping estimate", "key", estimate.Key, "error", callErr.Error())
			kept := estimate
			kept.Err = callErr
			q.current = kept
			out <- kept
			return
		}
		q.current = Quote{Key: estimate.Key, Summary: result, Authoritative: true}
		out <- q.current
	}()

	return estimate, out, nil
}

func (q *Quoter) calculate(ctx context.Context, target pricing.Target, r pricing.Range) (pricing.Summary, error) {
	if target.Kind == pricing.TargetRoom {
		return q.client.CalculateForRoom(ctx, target.ID, r)
	}
	return q.client.CalculateForProperty(ctx, target.ID, r)
}

// Current is the quote on display for the latest request.
func (q *Quoter) Current() Quote {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

func requestKey(target pricing.Target, r pricing.Range) string {
	return target.ID.String() + "@" + r.Key()
}
