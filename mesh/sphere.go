package mesh

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout shared by the CPU side and the vertex shader.
// Normal equals position for a unit sphere centered at the origin.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) VertexBytes() int {
	return len(m.Vertices) * int(unsafe.Sizeof(Vertex{}))
}

func (m *Mesh) IndexBytes() int {
	return len(m.Indices) * 4
}

// UVSphere tessellates a unit sphere into latBands*lonBands quads split
// into triangles. Rows are emitted latitude-major, both loops inclusive,
// so vertices are duplicated along the longitude seam and at the poles.
// Pole rows produce zero-area triangles.
func UVSphere(latBands, lonBands int) Mesh {
	m := Mesh{
		Vertices: make([]Vertex, 0, (latBands+1)*(lonBands+1)),
		Indices:  make([]uint32, 0, 6*latBands*lonBands),
	}

	for lat := 0; lat <= latBands; lat++ {
		theta := float64(lat) * math.Pi / float64(latBands)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for lon := 0; lon <= lonBands; lon++ {
			phi := float64(lon) * 2 * math.Pi / float64(lonBands)

			p := mgl32.Vec3{
				float32(math.Cos(phi) * sinTheta),
				float32(cosTheta),
				float32(math.Sin(phi) * sinTheta),
			}
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: p})
		}
	}

	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < lonBands; lon++ {
			first := uint32(lat*(lonBands+1) + lon)
			second := first + uint32(lonBands) + 1

			m.Indices = append(m.Indices,
				first, second, first+1,
				second, second+1, first+1)
		}
	}

	return m
}
