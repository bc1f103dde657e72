// Package bootsel turns a button press into a request to leave the
// control loop and enter the USB bootloader.
package bootsel

import (
	"context"
	"sync/atomic"
)

// Pin is an input that can call back on its active edge. The handler
// runs in interrupt context.
type Pin interface {
	SetIRQ(handler func()) error
	ClearIRQ() error
}

// Trigger latches the first edge seen on its pin.
type Trigger struct {
	pin Pin
	// Written by the ISR, which must not block.
	isrQ  chan struct{}
	fired atomic.Bool
	drops atomic.Uint32
}

func New(pin Pin) *Trigger {
	return &Trigger{pin: pin, isrQ: make(chan struct{}, 1)}
}

// Arm installs the interrupt handler.
func (t *Trigger) Arm() error {
	return t.pin.SetIRQ(func() {
		select {
		case t.isrQ <- struct{}{}:
		default:
			t.drops.Add(1)
		}
	})
}

// Disarm removes the interrupt handler.
func (t *Trigger) Disarm() error { return t.pin.ClearIRQ() }

// CancelOnFire calls cancel once the pin fires, then disarms. It returns
// when that happens or when ctx is done.
func (t *Trigger) CancelOnFire(ctx context.Context, cancel context.CancelFunc) {
	select {
	case <-ctx.Done():
	case <-t.isrQ:
		t.fired.Store(true)
		_ = t.Disarm()
		cancel()
	}
}

// Fired reports whether the edge was consumed by CancelOnFire.
func (t *Trigger) Fired() bool { return t.fired.Load() }

// Drops counts edges that arrived while one was already pending.
func (t *Trigger) Drops() uint32 { return t.drops.Load() }
