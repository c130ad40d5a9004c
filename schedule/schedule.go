package schedule

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs a function once after a delay.
type Scheduler interface {
	After(delay time.Duration, f func())
}

// Timers is a Scheduler whose pending functions can be waited for, so a command line front
// end can let a delayed redirect happen before exiting.
type Timers struct {
	wg sync.WaitGroup
}

var _ Scheduler = &Timers{}

func NewTimers() *Timers {
	return &Timers{}
}

func (t *Timers) After(delay time.Duration, f func()) {
	t.wg.Add(1)
	time.AfterFunc(delay, func() {
		defer t.wg.Done()
		f()
	})
}

// Wait blocks until every scheduled function has run or ctx is done.
func (t *Timers) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Immediate runs scheduled functions synchronously, ignoring the delay.
type Immediate struct{}

var _ Scheduler = Immediate{}

func (Immediate) After(_ time.Duration, f func()) {
	f()
}
