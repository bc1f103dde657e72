// Package light reads ambient illuminance for the control loop.
package light

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/bh1750"

	"luxservo-go/types"
)

// MaxLux is the largest value a BH1750 can report (16-bit counter).
const MaxLux types.Lux = 65535

// Reader is the sensor port: one synchronous reading per call.
type Reader interface {
	ReadLux() (types.Lux, error)
}

// Illuminator is the part of a tinygo sensor driver the adaptor needs:
// the current illuminance in milli-lux.
type Illuminator interface {
	Illuminance() int32
}

// BH1750 adapts a milli-lux driver to Reader.
type BH1750 struct {
	dev Illuminator
}

// NewBH1750 powers up a BH1750 on an already configured I2C bus in
// continuous high-resolution mode.
func NewBH1750(bus drivers.I2C) *BH1750 {
	d := bh1750.New(bus)
	d.Configure()
	return &BH1750{dev: &d}
}

// FromIlluminator wraps any milli-lux source.
func FromIlluminator(dev Illuminator) *BH1750 { return &BH1750{dev: dev} }

// ReadLux returns whole lux, truncated, saturating at MaxLux.
func (s *BH1750) ReadLux() (types.Lux, error) {
	mlx := s.dev.Illuminance()
	if mlx <= 0 {
		return 0, nil
	}
	lux := types.Lux(mlx / 1000)
	if lux > MaxLux {
		lux = MaxLux
	}
	return lux, nil
}
