// Package minibus implements a minimal fan-out event bus used to back the
// Pull operations on resources. Listeners are bound to a context and are
// collected once that context is done.
package minibus

import (
	"context"
	"sync"
)

type Bus struct {
	mu   sync.Mutex
	subs []*sub
}

// Listen returns a channel that receives every event sent to the bus until
// ctx is done, at which point the channel is closed.
func (b *Bus) Listen(ctx context.Context) <-chan any {
	s := &sub{
		ch:  make(chan any),
		ctx: ctx,
	}
	go func() {
		<-ctx.Done()
		s.close()
	}()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, s)
	return s.ch
}

// Send delivers event to every live listener, blocking until each has
// accepted it or gone away. Send returns false if ctx is done before
// delivery completes.
func (b *Bus) Send(ctx context.Context, event any) bool {
	b.mu.Lock()
	subs := make([]*sub, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	sweep := false
	for _, s := range subs {
		sent, live := s.send(ctx, event)
		if !sent {
			return false
		}
		if !live {
			sweep = true
		}
	}
	if sweep {
		b.sweep()
	}
	return true
}

// sweep drops subscribers whose context has expired.
func (b *Bus) sweep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	live := b.subs[:0]
	for _, s := range b.subs {
		if s.ctx.Err() == nil {
			live = append(live, s)
		}
	}
	b.subs = live
}

type sub struct {
	mu  sync.RWMutex
	ch  chan any
	ctx context.Context
}

func (s *sub) send(ctx context.Context, event any) (sent, live bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	select {
	case <-ctx.Done():
		return false, true
	case <-s.ctx.Done():
		// the listener going away doesn't fail the send
		return true, false
	case s.ch <- event:
		return true, true
	}
}

func (s *sub) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ch != nil {
		close(s.ch)
		s.ch = nil
	}
}
