package lattice

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one cell of the lattice as uploaded to the GPU: a model
// matrix bound as 4 consecutive vec4 attributes and an RGB color bound
// as a 5th, all advancing once per instance.
type Instance struct {
	Model mgl32.Mat4
	Color mgl32.Vec3
}

// Stride is the byte size of one packed instance record.
const Stride = int(unsafe.Sizeof(Instance{}))

// Extents is the integer size of the lattice along each axis.
type Extents struct {
	X, Y, Z int
}

func (e Extents) Count() int {
	return e.X * e.Y * e.Z
}

// Index linearizes (i,j,k) into [0, Count). The mapping is bijective for
// coordinates within the extents.
func (e Extents) Index(i, j, k int) int {
	return i*(e.Y*e.Z) + j*e.Z + k
}

// Build places one instance per lattice cell. The grid is centered on the
// x/z origin and its first row sits one spacing unit above y=0. Scale is
// applied in object space, after the translation. Color is a gradient of
// the cell coordinate; extents past 10 push components above 1.0, which
// is left unclamped.
func Build(ext Extents, spread, scale float32) []Instance {
	instances := make([]Instance, ext.Count())

	for i := 0; i < ext.X; i++ {
		for j := 0; j < ext.Y; j++ {
			for k := 0; k < ext.Z; k++ {
				x := (-float32(ext.X)/2)*spread + spread*float32(i)
				y := spread*float32(j) + spread
				z := (-float32(ext.Z)/2)*spread + spread*float32(k)

				model := mgl32.Translate3D(x, y, z).
					Mul4(mgl32.Scale3D(scale, scale, scale))
				color := mgl32.Vec3{
					0.1 * float32(i+1),
					0.1 * float32(j+1),
					0.1 * float32(k+1),
				}

				instances[ext.Index(i, j, k)] = Instance{Model: model, Color: color}
			}
		}
	}

	return instances
}
