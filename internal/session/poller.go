package session

import (
	"context"
	"sync"
	"time"
)

// Poller runs tick on a fixed interval until stopped.  Stop is idempotent
// and safe from any goroutine, and cancellation of the parent context
// stops the loop too, so every exit path (normal close, sweep, server
// shutdown) tears the timer down.  No tick runs after Stop returns.
type Poller struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartPoller begins ticking immediately-after-interval (the caller is
// expected to have done the first fetch itself).  tick receives a context
// that is cancelled when the poller stops, so in-flight backend calls are
// abandoned rather than written into a closed session.
func StartPoller(parent context.Context, interval time.Duration, tick func(context.Context)) *Poller {
	ctx, cancel := context.WithCancel(parent)
	p := &Poller{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(p.done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				tick(ctx)
			}
		}
	}()
	return p
}

// Stop cancels the loop and waits for the current tick, if any, to finish.
func (p *Poller) Stop() {
	p.once.Do(p.cancel)
	<-p.done
}
