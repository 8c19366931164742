package minibus

import (
	"context"
	"testing"
	"time"
)

func TestBus_SendListen(t *testing.T) {
	var bus Bus
	ctx, stop := context.WithCancel(context.Background())
	t.Cleanup(stop)

	ch := bus.Listen(ctx)
	go bus.Send(context.Background(), "hello")

	select {
	case got := <-ch:
		if got != "hello" {
			t.Fatalf("got %v, want hello", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBus_ListenerGone(t *testing.T) {
	var bus Bus
	ctx, stop := context.WithCancel(context.Background())
	ch := bus.Listen(ctx)
	stop()

	// the channel should be closed soon after the context ends
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("listener channel never closed")
		}
	}
}

func TestBus_SendNoListeners(t *testing.T) {
	var bus Bus
	if ok := bus.Send(context.Background(), 1); !ok {
		t.Fatal("Send with no listeners should succeed")
	}
}

func TestBus_SendCtxCancelled(t *testing.T) {
	var bus Bus
	listenCtx, stop := context.WithCancel(context.Background())
	t.Cleanup(stop)
	_ = bus.Listen(listenCtx) // nobody reads from this

	sendCtx, cancel := context.WithCancel(context.Background())
	cancel()
	if ok := bus.Send(sendCtx, 1); ok {
		t.Fatal("Send should fail when its context is already done")
	}
}

func TestDropExcess(t *testing.T) {
	in := make(chan any)
	out := DropExcess(in)

	for i := 0; i < 10; i++ {
		in <- i
	}
	close(in)

	var got []any
	for v := range out {
		got = append(got, v)
	}
	if len(got) == 0 {
		t.Fatal("expected at least the final event")
	}
	if got[len(got)-1] != 9 {
		t.Fatalf("final event = %v, want 9", got[len(got)-1])
	}
}
