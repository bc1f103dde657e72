package main

import (
	"context"
	"time"

	"luxservo-go/board"
	"luxservo-go/control"
	"luxservo-go/devices/bootsel"
	"luxservo-go/devices/display"
	"luxservo-go/services/servoloop"
	"luxservo-go/x/logx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	logx.Info("boot")

	cfg := control.Default()
	if err := cfg.Validate(); err != nil {
		logx.Error("config rejected", logx.Err(err))
		board.Halt()
	}

	p, err := board.Setup(cfg)
	if err != nil {
		logx.Error("board setup failed", logx.Err(err))
		board.Halt()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	trig := bootsel.New(p.Button)
	if err := trig.Arm(); err != nil {
		logx.Warn("bootsel button unavailable", logx.Err(err))
	}
	go trig.CancelOnFire(ctx, cancel)

	loop := &servoloop.Loop{
		Config:  cfg,
		Sensor:  p.Sensor,
		Servo:   p.Servo,
		Display: display.NewRenderer(p.Display),
		Layout:  display.DefaultLayout(),
	}
	err = loop.Run(ctx)
	cancel()

	if trig.Fired() {
		board.EnterBootloader()
		return
	}
	if err != nil {
		logx.Error("control loop stopped", logx.Err(err))
		board.Halt()
	}
}
