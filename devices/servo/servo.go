// Package servo drives the continuous-rotation actuator.
package servo

import (
	"luxservo-go/types"
)

// Driver accepts one pulse command per loop iteration. duty is the
// compare level for the pulse over the configured PWM period; drivers
// that program pulse width directly may ignore it.
type Driver interface {
	SetPulse(pulse types.Pulse, duty uint32) error
}

// Write is one command seen by a Recorder.
type Write struct {
	Pulse types.Pulse
	Duty  uint32
}

// Recorder is an in-memory Driver for host builds and tests.
type Recorder struct {
	Writes []Write
	// Err, when set, is returned by every SetPulse and nothing is recorded.
	Err error
	// Limit keeps only the most recent writes when positive.
	Limit int
}

func (r *Recorder) SetPulse(pulse types.Pulse, duty uint32) error {
	if r.Err != nil {
		return r.Err
	}
	r.Writes = append(r.Writes, Write{Pulse: pulse, Duty: duty})
	if r.Limit > 0 && len(r.Writes) > r.Limit {
		r.Writes = append(r.Writes[:0], r.Writes[len(r.Writes)-r.Limit:]...)
	}
	return nil
}

// Last returns the most recent command and whether there was one.
func (r *Recorder) Last() (Write, bool) {
	if len(r.Writes) == 0 {
		return Write{}, false
	}
	return r.Writes[len(r.Writes)-1], true
}
