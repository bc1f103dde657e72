// Package board brings up the peripherals of the light-following servo
// rig. The RP2 build talks to real hardware; every other build gets
// simulated parts with the same shapes.
package board

import (
	"tinygo.org/x/drivers"

	"luxservo-go/devices/bootsel"
	"luxservo-go/devices/light"
	"luxservo-go/devices/servo"
)

// PinMap names the GPIOs the rig is wired to (Pico GP numbering).
type PinMap struct {
	SensorSDA, SensorSCL   uint8 // I2C0
	DisplaySDA, DisplaySCL uint8 // I2C1
	Servo                  uint8 // PWM slice 1, channel A
	Button                 uint8 // to ground, pulled up
	ConsoleTX, ConsoleRX   uint8 // UART1
}

var Pins = PinMap{
	SensorSDA:  0,
	SensorSCL:  1,
	DisplaySDA: 14,
	DisplaySCL: 15,
	Servo:      18,
	Button:     6,
	ConsoleTX:  4,
	ConsoleRX:  5,
}

const (
	SensorAddr  = 0x23
	DisplayAddr = 0x3C
	I2CHz       = 400_000
	ConsoleBaud = 115200
)

// Peripherals is what Setup hands to the control loop.
type Peripherals struct {
	Sensor  light.Reader
	Servo   servo.Driver
	Display drivers.Displayer
	Button  bootsel.Pin
}
