package light

import (
	"luxservo-go/errcode"
	"luxservo-go/types"
)

// Fixed always reports the same reading.
type Fixed types.Lux

func (f Fixed) ReadLux() (types.Lux, error) { return types.Lux(f), nil }

// Sequence replays readings in order and wraps around. A non-nil Fail is
// returned, wrapped as a sensor error, once the sequence reaches FailAt
// (1-based call count); FailAt 0 disables it.
type Sequence struct {
	Values []types.Lux
	FailAt int
	Fail   error

	calls int
}

func (s *Sequence) ReadLux() (types.Lux, error) {
	s.calls++
	if s.Fail != nil && s.FailAt > 0 && s.calls >= s.FailAt {
		return 0, errcode.Wrap(errcode.SensorRead, "light.sequence", s.Fail)
	}
	if len(s.Values) == 0 {
		return 0, nil
	}
	return s.Values[(s.calls-1)%len(s.Values)], nil
}

// Calls reports how many readings were taken.
func (s *Sequence) Calls() int { return s.calls }

// Sweep walks a triangle wave between Lo and Hi in steps of Step, starting at Lo.
type Sweep struct {
	Lo, Hi types.Lux
	Step   types.Lux

	cur  types.Lux
	down bool
	init bool
}

func (s *Sweep) ReadLux() (types.Lux, error) {
	if !s.init {
		s.cur, s.init = s.Lo, true
		return s.cur, nil
	}
	step := s.Step
	if step == 0 {
		step = 1
	}
	if s.Hi <= s.Lo {
		return s.Lo, nil
	}
	if s.down {
		if s.cur-s.Lo <= step {
			s.cur, s.down = s.Lo, false
		} else {
			s.cur -= step
		}
	} else {
		if s.Hi-s.cur <= step {
			s.cur, s.down = s.Hi, true
		} else {
			s.cur += step
		}
	}
	return s.cur, nil
}
