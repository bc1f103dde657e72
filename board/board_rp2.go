//go:build rp2040 || rp2350

package board

import (
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ssd1306"

	"luxservo-go/control"
	"luxservo-go/devices/bootsel"
	"luxservo-go/devices/light"
	"luxservo-go/devices/servo"
	"luxservo-go/errcode"
	"luxservo-go/x/logx"
)

func configureI2C(hw *machine.I2C, sda, scl uint8) error {
	s, c := machine.Pin(sda), machine.Pin(scl)
	s.Configure(machine.PinConfig{Mode: machine.PinI2C})
	c.Configure(machine.PinConfig{Mode: machine.PinI2C})
	return hw.Configure(machine.I2CConfig{SDA: s, SCL: c, Frequency: I2CHz})
}

// Setup configures the console mirror, both I2C buses, the display, the
// sensor, the servo PWM and the button, in that order. The servo starts at
// cfg.StopPulse.
func Setup(cfg control.Config) (*Peripherals, error) {
	if err := uartx.UART1.Configure(uartx.UARTConfig{
		BaudRate: ConsoleBaud,
		TX:       machine.Pin(Pins.ConsoleTX),
		RX:       machine.Pin(Pins.ConsoleRX),
	}); err == nil {
		logx.SetOutput(uartx.UART1)
	}

	if err := configureI2C(machine.I2C0, Pins.SensorSDA, Pins.SensorSCL); err != nil {
		return nil, errcode.Wrap(errcode.SensorRead, "board.i2c0", err)
	}
	if err := configureI2C(machine.I2C1, Pins.DisplaySDA, Pins.DisplaySCL); err != nil {
		return nil, errcode.Wrap(errcode.DisplayWrite, "board.i2c1", err)
	}

	oled := ssd1306.NewI2C(machine.I2C1)
	oled.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  DisplayAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	oled.ClearDisplay()

	sensor := light.NewBH1750(machine.I2C0)

	sv, err := servo.NewPWM(machine.PWM1, machine.Pin(Pins.Servo), cfg.StopPulse)
	if err != nil {
		return nil, err
	}

	logx.Info("board: ready",
		logx.Uint("servo_gp", uint64(Pins.Servo)),
		logx.Uint("button_gp", uint64(Pins.Button)))

	return &Peripherals{
		Sensor:  sensor,
		Servo:   sv,
		Display: &oled,
		Button:  bootsel.NewPin(machine.Pin(Pins.Button)),
	}, nil
}

// EnterBootloader reboots into the ROM USB mass-storage loader. It does
// not return.
func EnterBootloader() {
	logx.Warn("board: entering bootloader")
	machine.EnterBootloader()
}

// Halt parks the firmware after a fatal error.
func Halt() {
	for {
		time.Sleep(time.Hour)
	}
}
