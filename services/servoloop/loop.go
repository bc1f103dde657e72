// Package servoloop runs the sense, decide, actuate and render cycle.
package servoloop

import (
	"context"

	"github.com/benbjohnson/clock"

	"luxservo-go/control"
	"luxservo-go/devices/display"
	"luxservo-go/devices/light"
	"luxservo-go/devices/servo"
	"luxservo-go/errcode"
	"luxservo-go/types"
	"luxservo-go/x/logx"
)

// Renderer draws one status frame.
type Renderer interface {
	Render(display.Frame) error
}

// Loop owns the peripherals for the lifetime of Run. It is not safe for
// concurrent use.
type Loop struct {
	Config  control.Config
	Sensor  light.Reader
	Servo   servo.Driver
	Display Renderer // optional
	Layout  display.Layout
	Clock   clock.Clock // defaults to the wall clock

	// MaxIterations stops Run after that many steps; 0 runs until cancelled.
	MaxIterations uint64
	// OnStatus, if set, sees every completed step.
	OnStatus func(types.Status)

	iter uint64
}

// Iterations reports completed steps.
func (l *Loop) Iterations() uint64 { return l.iter }

// Step performs one iteration without sleeping: read, command, actuate,
// render, log. A failure aborts the iteration at that point.
func (l *Loop) Step() (types.Status, error) {
	lux, err := l.Sensor.ReadLux()
	if err != nil {
		return types.Status{}, coded(errcode.SensorRead, "servoloop.read", err)
	}

	cmd := l.Config.Command(lux)
	if err := l.Servo.SetPulse(cmd.Pulse, cmd.Duty); err != nil {
		return types.Status{}, coded(errcode.ActuatorWrite, "servoloop.actuate", err)
	}

	if l.Display != nil {
		if err := l.Display.Render(display.StatusFrame(l.Layout, lux)); err != nil {
			return types.Status{}, coded(errcode.DisplayWrite, "servoloop.render", err)
		}
	}

	l.iter++
	st := types.Status{
		Iteration: l.iter,
		Lux:       lux,
		Pulse:     cmd.Pulse,
		Duty:      cmd.Duty,
		Direction: cmd.Direction,
	}
	logx.Info("tick",
		logx.Uint("iter", st.Iteration),
		logx.Uint("lux", uint64(st.Lux)),
		logx.Uint("pulse", uint64(st.Pulse)),
		logx.Uint("duty", uint64(st.Duty)),
		logx.Str("dir", st.Direction.String()),
	)
	if l.OnStatus != nil {
		l.OnStatus(st)
	}
	return st, nil
}

// Run steps, then sleeps Config.LoopPeriod, until ctx is cancelled or
// MaxIterations is reached, both of which return nil. A peripheral
// failure is returned as is. Whatever the reason, the servo is parked at
// the stop pulse before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	err := l.run(ctx)
	if perr := l.Park(); perr != nil {
		logx.Error("servoloop: park failed", logx.Err(perr))
	}
	return err
}

// Park commands the stop pulse.
func (l *Loop) Park() error {
	stop := l.Config.StopPulse
	err := l.Servo.SetPulse(stop, control.DutyCycle(stop, l.Config.PeriodTicks))
	return coded(errcode.ActuatorWrite, "servoloop.park", err)
}

func (l *Loop) run(ctx context.Context) error {
	clk := l.Clock
	if clk == nil {
		clk = clock.New()
	}
	logx.Info("servoloop: starting",
		logx.Uint("period_ms", uint64(l.Config.LoopPeriod.Milliseconds())),
		logx.Uint("max_iter", l.MaxIterations))

	for {
		if ctx.Err() != nil {
			logx.Info("servoloop: stopping", logx.Uint("iter", l.iter))
			return nil
		}
		if _, err := l.Step(); err != nil {
			logx.Error("servoloop: step failed", logx.Err(err))
			return err
		}
		if l.MaxIterations > 0 && l.iter >= l.MaxIterations {
			return nil
		}

		t := clk.Timer(l.Config.LoopPeriod)
		select {
		case <-ctx.Done():
			t.Stop()
			logx.Info("servoloop: stopping", logx.Uint("iter", l.iter))
			return nil
		case <-t.C:
		}
	}
}

// coded wraps err unless a peripheral already attached a code.
func coded(c errcode.Code, op string, err error) error {
	if err == nil || errcode.Of(err) != errcode.Error {
		return err
	}
	return errcode.Wrap(c, op, err)
}
