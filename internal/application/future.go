package application

import (
	"context"
	"sync"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
)

// Outcome is the terminal state of a call. Exactly one of Value, Err or
// NotImplemented is meaningful.
type Outcome struct {
	Value          any
	Err            *domain.BridgeError
	NotImplemented bool
}

// Future resolves exactly once. Resolutions after the first are dropped
// and reported to the onDrop hook.
type Future struct {
	once      sync.Once
	done      chan struct{}
	outcome   Outcome
	onResolve func(Outcome)
	onDrop    func(attempted Outcome)
}

func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// OnDrop installs a hook for discarded resolutions. Must be set before the
// future is handed out.
func (f *Future) OnDrop(fn func(attempted Outcome)) *Future {
	f.onDrop = fn
	return f
}

// OnResolve installs a hook run once with the winning outcome, before
// waiters are released. Must be set before the future is handed out.
func (f *Future) OnResolve(fn func(Outcome)) *Future {
	f.onResolve = fn
	return f
}

func (f *Future) Success(value any) bool {
	return f.resolve(Outcome{Value: value})
}

func (f *Future) Fail(err *domain.BridgeError) bool {
	return f.resolve(Outcome{Err: err})
}

func (f *Future) NotImplemented() bool {
	return f.resolve(Outcome{NotImplemented: true})
}

func (f *Future) resolve(o Outcome) bool {
	resolved := false
	f.once.Do(func() {
		f.outcome = o
		resolved = true
		if f.onResolve != nil {
			f.onResolve(o)
		}
		close(f.done)
	})
	if !resolved && f.onDrop != nil {
		f.onDrop(o)
	}
	return resolved
}

// Done is closed once the future has resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until resolution or until ctx ends. A ctx error leaves the
// future pending.
func (f *Future) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-f.done:
		return f.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Result returns the outcome and whether the future has resolved.
func (f *Future) Result() (Outcome, bool) {
	select {
	case <-f.done:
		return f.outcome, true
	default:
		return Outcome{}, false
	}
}
