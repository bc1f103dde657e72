//go:build !(rp2040 || rp2350)

package board

import (
	"os"

	"luxservo-go/control"
	"luxservo-go/devices/bootsel"
	"luxservo-go/devices/display"
	"luxservo-go/devices/light"
	"luxservo-go/devices/servo"
	"luxservo-go/x/logx"
)

// Setup returns simulated parts: a sensor sweeping the whole reading
// range, a recording servo, an in-memory canvas and a button that only
// fires when pressed from code. The servo starts at cfg.StopPulse.
func Setup(cfg control.Config) (*Peripherals, error) {
	logx.Info("board: host simulation")
	sv := &servo.Recorder{Limit: 64}
	if err := sv.SetPulse(cfg.StopPulse, control.DutyCycle(cfg.StopPulse, cfg.PeriodTicks)); err != nil {
		return nil, err
	}
	return &Peripherals{
		Sensor:  &light.Sweep{Lo: 0, Hi: 1600, Step: 25},
		Servo:   sv,
		Display: display.NewCanvas(display.Width, display.Height),
		Button:  &bootsel.FakePin{},
	}, nil
}

func EnterBootloader() {
	logx.Warn("board: bootloader requested, no-op on host")
}

func Halt() { os.Exit(1) }
