package types

// ------------------------
// Light
// ------------------------

// Lux is one illuminance sample in whole lux. It is unsigned: a sensor can
// never hand the control policy a negative reading.
type Lux uint32

// ------------------------
// Servo
// ------------------------

// Pulse is a servo pulse width in microseconds. It is wider than the servo
// range needs so extrapolated commands stay representable.
type Pulse uint32

// Direction is the rotation sense implied by a pulse relative to the stop pulse.
type Direction int8

const (
	Reverse Direction = -1
	Stop    Direction = 0
	Forward Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Reverse:
		return "reverse"
	case Forward:
		return "forward"
	default:
		return "stop"
	}
}

// ------------------------
// Loop telemetry
// ------------------------

// Status is the snapshot of one control-loop iteration. It is produced for
// logging and display and is not kept once the next iteration starts.
type Status struct {
	Iteration uint64    `json:"iteration"`
	Lux       Lux       `json:"lux"`
	Pulse     Pulse     `json:"pulse_us"`
	Duty      uint32    `json:"duty"`
	Direction Direction `json:"dir"`
}
