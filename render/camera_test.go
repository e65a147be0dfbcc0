package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitStartPosition(t *testing.T) {
	o := &Orbit{
		Up:     mgl32.Vec3{0, 1, 0},
		Radius: 51.75,
		Height: 51.75,
		Speed:  0.1,
	}

	p := o.PositionAt(0)
	if !p.ApproxEqual(mgl32.Vec3{0, o.Height, o.Radius}) {
		t.Errorf("PositionAt(0)=%v; expected (0,%f,%f)", p, o.Height, o.Radius)
	}
}

func TestOrbitStaysOnCircle(t *testing.T) {
	const tolerance = 1e-4

	o := &Orbit{
		Up:     mgl32.Vec3{0, 0, -1},
		Radius: 20,
		Height: 7,
		Speed:  0.5,
	}

	for _, elapsed := range []float32{0, 0.1, 1, 2.5, 10, 60, 3600} {
		p := o.PositionAt(elapsed)
		horizontal := math.Hypot(float64(p.X()), float64(p.Z()))
		if math.Abs(horizontal-float64(o.Radius)) > tolerance*float64(o.Radius) {
			t.Errorf("t=%f: horizontal radius %f; expected %f", elapsed, horizontal, o.Radius)
		}
		if p.Y() != o.Height {
			t.Errorf("t=%f: height %f; expected %f", elapsed, p.Y(), o.Height)
		}
	}
}

func TestOrbitDeterministic(t *testing.T) {
	o := &Orbit{Radius: 5, Height: 1, Speed: 0.3}
	if o.PositionAt(42) != o.PositionAt(42) {
		t.Error("PositionAt is not a pure function of elapsed time")
	}
}

func TestTimerFrames(t *testing.T) {
	timer := NewTimer(100)

	f := timer.Frame(100.5)
	if f.Elapsed != 0.5 || f.Delta != 0.5 {
		t.Errorf("frame=%+v; expected elapsed=0.5 delta=0.5", f)
	}

	f = timer.Frame(101)
	if f.Elapsed != 1 || f.Delta != 0.5 {
		t.Errorf("frame=%+v; expected elapsed=1 delta=0.5", f)
	}
}
