//go:build !(rp2040 || rp2350)

package board

import (
	"testing"

	"luxservo-go/control"
	"luxservo-go/devices/servo"
)

func TestPinsDistinct(t *testing.T) {
	pins := []uint8{
		Pins.SensorSDA, Pins.SensorSCL,
		Pins.DisplaySDA, Pins.DisplaySCL,
		Pins.Servo, Pins.Button,
		Pins.ConsoleTX, Pins.ConsoleRX,
	}
	seen := map[uint8]bool{}
	for _, p := range pins {
		if p > 28 {
			t.Fatalf("GP%d is not a user GPIO", p)
		}
		if seen[p] {
			t.Fatalf("GP%d assigned twice", p)
		}
		seen[p] = true
	}
}

func TestHostSetup(t *testing.T) {
	p, err := Setup(control.Default())
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := p.Servo.(*servo.Recorder)
	if !ok {
		t.Fatalf("servo is %T", p.Servo)
	}
	if w, _ := rec.Last(); len(rec.Writes) != 1 || w != (servo.Write{Pulse: 1500, Duty: 30}) {
		t.Fatalf("bring-up writes = %+v", rec.Writes)
	}
	if p.Sensor == nil || p.Servo == nil || p.Display == nil || p.Button == nil {
		t.Fatalf("missing peripheral: %+v", p)
	}
	if w, h := p.Display.Size(); w != 128 || h != 64 {
		t.Fatalf("display size = %dx%d", w, h)
	}
	lux, err := p.Sensor.ReadLux()
	if err != nil || lux != 0 {
		t.Fatalf("first reading = %d, %v", lux, err)
	}
}
