package control

import (
	"time"

	"luxservo-go/errcode"
	"luxservo-go/types"
)

// DutyDivisor is the signal period expressed in the pulse unit family
// (microseconds per second) used by DutyCycle.
const DutyDivisor = 1_000_000

// Config holds the fixed thresholds of the control policy. It is a value
// type: build it once at start-up and pass copies around.
type Config struct {
	// DeadZoneLow and DeadZoneHigh are exclusive bounds. A reading strictly
	// between them commands StopPulse.
	DeadZoneLow  types.Lux
	DeadZoneHigh types.Lux

	// DomainMin..DomainMax is mapped linearly onto MinPulse..MaxPulse.
	DomainMin types.Lux
	DomainMax types.Lux

	MinPulse  types.Pulse
	StopPulse types.Pulse
	MaxPulse  types.Pulse

	// PeriodTicks is the PWM counter wrap value fed to DutyCycle.
	PeriodTicks uint32

	// LoopPeriod is the pause between two loop iterations.
	LoopPeriod time.Duration

	// Extrapolate keeps the raw linear mapping for readings above DomainMax
	// instead of saturating at MaxPulse.
	Extrapolate bool
}

// Default returns the constants of the shipped firmware.
func Default() Config {
	return Config{
		DeadZoneLow:  0,
		DeadZoneHigh: 200,
		DomainMin:    0,
		DomainMax:    1500,
		MinPulse:     500,
		StopPulse:    1500,
		MaxPulse:     2500,
		PeriodTicks:  20000,
		LoopPeriod:   50 * time.Millisecond,
	}
}

// Validate rejects constant sets the policy cannot honour.
func (c Config) Validate() error {
	const op = "control.config"
	switch {
	case c.DomainMax <= c.DomainMin:
		return errcode.Invalid(op, "domain max must exceed domain min")
	case c.DeadZoneHigh < c.DeadZoneLow:
		return errcode.Invalid(op, "dead zone high below dead zone low")
	case c.MinPulse > c.StopPulse || c.StopPulse > c.MaxPulse:
		return errcode.Invalid(op, "pulses must satisfy min <= stop <= max")
	case c.PeriodTicks == 0:
		return errcode.Invalid(op, "period ticks must be positive")
	case c.LoopPeriod <= 0:
		return errcode.Invalid(op, "loop period must be positive")
	}
	// The duty derivation does not clamp; new constants must keep it in range.
	if DutyCycle(c.MaxPulse, c.PeriodTicks) > c.PeriodTicks {
		return errcode.Invalid(op, "max pulse overflows the pwm period")
	}
	return nil
}
