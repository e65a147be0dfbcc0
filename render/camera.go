package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	ViewMatrix(elapsed float32) mgl32.Mat4
}

// Orbit circles the target at a fixed radius and height. Position is a
// pure function of elapsed time, so the orbit is deterministic and
// restartable at any t.
type Orbit struct {
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Radius float32
	Height float32
	Speed  float32 // radians per second
}

func (o *Orbit) PositionAt(elapsed float32) mgl32.Vec3 {
	angle := float64(o.Speed * elapsed)
	return mgl32.Vec3{
		-o.Radius * float32(math.Sin(angle)),
		o.Height,
		o.Radius * float32(math.Cos(angle)),
	}
}

func (o *Orbit) ViewMatrix(elapsed float32) mgl32.Mat4 {
	return mgl32.LookAtV(o.PositionAt(elapsed), o.Target, o.Up)
}
