package bootsel

import (
	"context"
	"testing"
	"time"
)

func TestPressCancelsOnce(t *testing.T) {
	pin := &FakePin{}
	tr := New(pin)
	if err := tr.Arm(); err != nil {
		t.Fatal(err)
	}
	if !pin.Armed() {
		t.Fatal("handler not installed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		tr.CancelOnFire(ctx, cancel)
		close(done)
	}()

	pin.Press()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("trigger did not fire")
	}
	if ctx.Err() == nil {
		t.Fatal("context not cancelled")
	}
	if !tr.Fired() {
		t.Fatal("Fired() = false")
	}
	if pin.Armed() || pin.Cleared != 1 {
		t.Fatalf("pin still armed (cleared=%d)", pin.Cleared)
	}
}

func TestExtraEdgesDropped(t *testing.T) {
	pin := &FakePin{}
	tr := New(pin)
	_ = tr.Arm()
	pin.Press()
	pin.Press()
	pin.Press()
	if got := tr.Drops(); got != 2 {
		t.Fatalf("drops = %d, want 2", got)
	}
}

func TestContextDoneWithoutPress(t *testing.T) {
	tr := New(&FakePin{})
	_ = tr.Arm()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	tr.CancelOnFire(ctx, func() { called = true })
	if called || tr.Fired() {
		t.Fatal("fired without a press")
	}
}
