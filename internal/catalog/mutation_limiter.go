package catalog

// mutation_limiter.go serializes create/update submissions.
//
// Only one submission talks to the product API at a time, so a response can
// never be applied on top of a newer one that was sent later. When the slot
// is held, new submissions wait up to maxWait before failing with
// ErrMutationBusy.
//
// The limiter also supports graceful shutdown via WaitForDrain, which blocks
// until the in-flight submission completes.

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxConcurrentMutations is the default number of submissions allowed in flight.
const DefaultMaxConcurrentMutations = 1

// DefaultMutationWait is how long a submission waits for a slot before failing.
const DefaultMutationWait = 10 * time.Second

// MutationLimiter controls concurrent submissions using a semaphore pattern.
type MutationLimiter struct {
	semaphore chan struct{}
	maxWait   time.Duration

	mu     sync.RWMutex
	active int
}

// NewMutationLimiter creates a limiter that allows at most maxConcurrent
// submissions at once. Callers that cannot acquire a slot within maxWait
// receive ErrMutationBusy.
func NewMutationLimiter(maxConcurrent int, maxWait time.Duration) *MutationLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentMutations
	}
	if maxWait <= 0 {
		maxWait = DefaultMutationWait
	}

	return &MutationLimiter{
		semaphore: make(chan struct{}, maxConcurrent),
		maxWait:   maxWait,
	}
}

// Acquire attempts to acquire a submission slot.
// The caller MUST call Release() when the submission completes (use defer).
func (l *MutationLimiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil

	case <-waitCtx.Done():
		// Distinguish caller cancellation from our own wait timeout
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrMutationBusy
	}
}

// TryAcquire attempts to acquire a slot without blocking.
func (l *MutationLimiter) TryAcquire() bool {
	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return true
	default:
		return false
	}
}

// Release releases a previously acquired slot.
// Must be called exactly once for each successful Acquire/TryAcquire.
func (l *MutationLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	<-l.semaphore
}

// ActiveCount returns the number of submissions in flight.
func (l *MutationLimiter) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// WaitForDrain blocks until no submission is in flight or ctx is done.
func (l *MutationLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.ActiveCount() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
