package light

import (
	"errors"
	"testing"

	"luxservo-go/errcode"
	"luxservo-go/types"
)

type fakeIlluminator struct{ mlx int32 }

func (f *fakeIlluminator) Illuminance() int32 { return f.mlx }

func TestBH1750Conversion(t *testing.T) {
	cases := []struct {
		mlx  int32
		want types.Lux
	}{
		{0, 0},
		{-5, 0},
		{999, 0},
		{1000, 1},
		{199_999, 199},
		{1_500_000, 1500},
		{2_000_000_000, MaxLux},
	}
	f := &fakeIlluminator{}
	s := FromIlluminator(f)
	for _, c := range cases {
		f.mlx = c.mlx
		got, err := s.ReadLux()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != c.want {
			t.Fatalf("mlx=%d: got %d, want %d", c.mlx, got, c.want)
		}
	}
}

func TestSequenceWrapsAndFails(t *testing.T) {
	boom := errors.New("bus stuck")
	s := &Sequence{Values: []types.Lux{0, 50, 1500}, FailAt: 5, Fail: boom}
	want := []types.Lux{0, 50, 1500, 0}
	for i, w := range want {
		got, err := s.ReadLux()
		if err != nil || got != w {
			t.Fatalf("read %d: got %d, %v; want %d", i, got, err, w)
		}
	}
	_, err := s.ReadLux()
	if !errors.Is(err, boom) || errcode.Of(err) != errcode.SensorRead {
		t.Fatalf("expected wrapped sensor error, got %v", err)
	}
	if s.Calls() != 5 {
		t.Fatalf("calls = %d", s.Calls())
	}
}

func TestSweepTriangle(t *testing.T) {
	s := &Sweep{Lo: 0, Hi: 10, Step: 4}
	want := []types.Lux{0, 4, 8, 10, 6, 2, 0, 4}
	for i, w := range want {
		got, _ := s.ReadLux()
		if got != w {
			t.Fatalf("step %d: got %d, want %d", i, got, w)
		}
	}
}

func TestFixed(t *testing.T) {
	got, err := Fixed(321).ReadLux()
	if err != nil || got != 321 {
		t.Fatalf("got %d, %v", got, err)
	}
}
