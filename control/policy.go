// Package control turns one illuminance reading into one servo command.
//
// The policy is memoryless: the command depends on the current reading only,
// so every function here is pure and safe to call from tests with any Config.
package control

import (
	"luxservo-go/types"
	"luxservo-go/x/mathx"
)

// Command is the actuator command derived from a single reading.
type Command struct {
	Pulse     types.Pulse
	Duty      uint32
	Direction types.Direction
	// Speed is the distance from the stop pulse, in microseconds.
	Speed uint32
}

// Pulse maps reading to a pulse width.
//
// Readings strictly inside the dead zone stop the servo. Note that a reading
// of exactly DeadZoneLow (0 with the defaults) is outside the zone and maps to
// MinPulse, while 1 stops the servo. Everything else is mapped linearly from
// the domain onto [MinPulse, MaxPulse]; above the domain the result saturates
// at MaxPulse unless Extrapolate is set.
func (c Config) Pulse(reading types.Lux) types.Pulse {
	if mathx.Inside(reading, c.DeadZoneLow, c.DeadZoneHigh) {
		return c.StopPulse
	}
	p := mathx.MapLinear(
		int64(reading),
		int64(c.DomainMin), int64(c.DomainMax),
		int64(c.MinPulse), int64(c.MaxPulse),
	)
	if c.Extrapolate {
		// Pulse is unsigned; below-domain extrapolation floors at zero.
		return types.Pulse(mathx.Clamp(p, 0, int64(^types.Pulse(0))))
	}
	return types.Pulse(mathx.Clamp(p, int64(c.MinPulse), int64(c.MaxPulse)))
}

// Direction reports the rotation sense of p.
func (c Config) Direction(p types.Pulse) types.Direction {
	switch {
	case p < c.StopPulse:
		return types.Reverse
	case p > c.StopPulse:
		return types.Forward
	default:
		return types.Stop
	}
}

// Command computes the full actuator command for reading.
func (c Config) Command(reading types.Lux) Command {
	p := c.Pulse(reading)
	return Command{
		Pulse:     p,
		Duty:      DutyCycle(p, c.PeriodTicks),
		Direction: c.Direction(p),
		Speed:     uint32(mathx.Dist(p, c.StopPulse)),
	}
}

// DutyCycle converts a pulse width into the PWM compare level for a counter
// that wraps at periodTicks: floor(pulse*(periodTicks+1)/DutyDivisor).
// The product is formed in 64 bits, so large pulses cannot wrap. The result is
// not clamped to periodTicks; Config.Validate checks that bound.
func DutyCycle(pulse types.Pulse, periodTicks uint32) uint32 {
	d := uint64(pulse) * (uint64(periodTicks) + 1) / DutyDivisor
	if d > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(d)
}
