// Command luxsim runs the control loop against simulated peripherals and
// prints what the servo and display would have done.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v2"

	"luxservo-go/control"
	"luxservo-go/devices/display"
	"luxservo-go/devices/light"
	"luxservo-go/devices/servo"
	"luxservo-go/errcode"
	"luxservo-go/services/servoloop"
	"luxservo-go/types"
	"luxservo-go/x/logx"
)

const (
	flagProfile     = "profile"
	flagLux         = "lux"
	flagIterations  = "iterations"
	flagPeriod      = "period"
	flagExtrapolate = "extrapolate"
	flagFrame       = "frame"
	flagLogLevel    = "log-level"

	profileSweep = "sweep"
	profileFixed = "fixed"
	profileSteps = "steps"
)

// stepReadings walks the interesting points of the policy in order.
var stepReadings = []types.Lux{0, 1, 50, 199, 200, 201, 750, 1499, 1500, 3000}

type options struct {
	profile     string
	lux         uint
	iterations  uint64
	period      time.Duration
	extrapolate bool
	frame       bool
}

func main() {
	app := &cli.App{
		Name:  "luxsim",
		Usage: "simulate the light-driven servo loop on the host",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagProfile,
				Value: profileSweep,
				Usage: "sensor profile: sweep, fixed or steps",
			},
			&cli.UintFlag{
				Name:  flagLux,
				Value: 350,
				Usage: "reading for the fixed profile",
			},
			&cli.Uint64Flag{
				Name:    flagIterations,
				Aliases: []string{"n"},
				Value:   uint64(len(stepReadings)),
				Usage:   "iterations to run, 0 for until interrupted",
			},
			&cli.DurationFlag{
				Name:  flagPeriod,
				Value: control.Default().LoopPeriod,
				Usage: "pause between iterations",
			},
			&cli.BoolFlag{
				Name:  flagExtrapolate,
				Usage: "let readings above the domain extrapolate instead of saturating",
			},
			&cli.BoolFlag{
				Name:  flagFrame,
				Usage: "dump the last display frame as ASCII",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: "warn",
				Usage: "log level: debug, info, warn or error",
			},
		},
		Before: func(c *cli.Context) error {
			logx.SetLevel(logx.ParseLevel(c.String(flagLogLevel)))
			return nil
		},
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()
			return run(ctx, options{
				profile:     c.String(flagProfile),
				lux:         c.Uint(flagLux),
				iterations:  c.Uint64(flagIterations),
				period:      c.Duration(flagPeriod),
				extrapolate: c.Bool(flagExtrapolate),
				frame:       c.Bool(flagFrame),
			}, c.App.Writer)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logx.Error("luxsim failed", logx.Err(err))
		os.Exit(1)
	}
}

func sensorFor(o options) (light.Reader, error) {
	switch o.profile {
	case profileSweep:
		return &light.Sweep{Lo: 0, Hi: 1600, Step: 100}, nil
	case profileFixed:
		if o.lux > uint(light.MaxLux) {
			return nil, errcode.Invalid("luxsim", "lux out of range")
		}
		return light.Fixed(o.lux), nil
	case profileSteps:
		return &light.Sequence{Values: stepReadings}, nil
	default:
		return nil, errcode.Invalid("luxsim", "unknown profile "+o.profile)
	}
}

func run(ctx context.Context, o options, w io.Writer) error {
	cfg := control.Default()
	cfg.Extrapolate = o.extrapolate
	if o.period > 0 {
		cfg.LoopPeriod = o.period
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	sensor, err := sensorFor(o)
	if err != nil {
		return err
	}

	canvas := display.NewCanvas(display.Width, display.Height)
	loop := &servoloop.Loop{
		Config:        cfg,
		Sensor:        sensor,
		Servo:         &servo.Recorder{Limit: 1},
		Display:       display.NewRenderer(canvas),
		Layout:        display.DefaultLayout(),
		MaxIterations: o.iterations,
		OnStatus: func(st types.Status) {
			fmt.Fprintf(w, "%4d  lux=%-5d pulse=%-5d duty=%-4d %s\n",
				st.Iteration, st.Lux, st.Pulse, st.Duty, st.Direction)
		},
	}
	if err := loop.Run(ctx); err != nil {
		return err
	}
	if o.frame {
		fmt.Fprint(w, canvas.String())
	}
	return nil
}
