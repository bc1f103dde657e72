//go:build rp2040 || rp2350

package bootsel

import "machine"

type rp2Pin struct{ p machine.Pin }

// NewPin configures p as a pulled-up input that fires on the falling
// edge, i.e. a button to ground.
func NewPin(p machine.Pin) Pin {
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return rp2Pin{p: p}
}

func (r rp2Pin) SetIRQ(handler func()) error {
	return r.p.SetInterrupt(machine.PinFalling, func(machine.Pin) { handler() })
}

func (r rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}
