package servo

import (
	"errors"
	"testing"

	"luxservo-go/types"
)

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	if _, ok := r.Last(); ok {
		t.Fatal("empty recorder reported a write")
	}
	_ = r.SetPulse(1500, 30)
	_ = r.SetPulse(2500, 50)
	if len(r.Writes) != 2 {
		t.Fatalf("writes = %d", len(r.Writes))
	}
	last, ok := r.Last()
	if !ok || last != (Write{Pulse: 2500, Duty: 50}) {
		t.Fatalf("last = %+v", last)
	}
}

func TestRecorderError(t *testing.T) {
	boom := errors.New("pwm fault")
	r := Recorder{Err: boom}
	if err := r.SetPulse(500, 10); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if len(r.Writes) != 0 {
		t.Fatal("failed write was recorded")
	}
}

func TestRecorderLimit(t *testing.T) {
	r := Recorder{Limit: 2}
	for p := 1; p <= 5; p++ {
		_ = r.SetPulse(types.Pulse(p*100), uint32(p))
	}
	if len(r.Writes) != 2 || r.Writes[0].Pulse != 400 || r.Writes[1].Pulse != 500 {
		t.Fatalf("writes = %+v", r.Writes)
	}
}
