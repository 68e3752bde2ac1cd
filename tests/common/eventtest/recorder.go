//go:build unit || e2e

package eventtest

import (
	"context"
	"sync"

	"stay-pricing/internal/usecase/shared"
)

// Recorder is an in-memory EventPublisher that keeps every published event.
type Recorder struct {
	mu     sync.Mutex
	events []shared.RatesChanged
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, evt shared.RatesChanged) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *Recorder) Events() []shared.RatesChanged {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shared.RatesChanged(nil), r.events...)
}

// Named returns the recorded events called name, in publish order.
func (r *Recorder) Named(name shared.EventName) []shared.RatesChanged {
	var out []shared.RatesChanged
	for _, evt := range r.Events() {
		if evt.Name == name {
			out = append(out, evt)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
