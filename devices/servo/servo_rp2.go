//go:build rp2040 || rp2350

package servo

import (
	"machine"

	"tinygo.org/x/drivers/servo"

	"luxservo-go/errcode"
	"luxservo-go/types"
)

// PWM programs a 50 Hz servo signal on one RP2 slice channel.
type PWM struct {
	s        servo.Servo
	periodUs types.Pulse
}

// NewPWM claims pin on the given PWM slice and starts it at initial. The
// tinygo servo driver fixes the period at 20 ms.
func NewPWM(pwm servo.PWM, pin machine.Pin, initial types.Pulse) (*PWM, error) {
	s, err := servo.New(pwm, pin)
	if err != nil {
		return nil, errcode.Wrap(errcode.ActuatorWrite, "servo.new", err)
	}
	p := &PWM{s: s, periodUs: 20000}
	_ = p.SetPulse(initial, 0)
	return p, nil
}

// SetPulse writes the pulse width. Widths at or beyond the period hold
// the line high, which is what a compare level above the wrap does.
func (p *PWM) SetPulse(pulse types.Pulse, _ uint32) error {
	if pulse > p.periodUs {
		pulse = p.periodUs
	}
	p.s.SetMicroseconds(int16(pulse))
	return nil
}
