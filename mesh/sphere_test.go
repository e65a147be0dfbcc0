package mesh

import (
	"math"
	"testing"
)

var sphereSizeTests = []struct {
	latBands    int
	lonBands    int
	outVertices int
	outIndices  int
}{
	{1, 1, 4, 6},
	{4, 4, 25, 96},
	{4, 8, 45, 192},
	{30, 30, 961, 5400},
}

func TestUVSphereSize(t *testing.T) {
	for _, test := range sphereSizeTests {
		m := UVSphere(test.latBands, test.lonBands)
		if len(m.Vertices) != test.outVertices {
			t.Errorf("UVSphere(%d,%d) vertices=%d; expected %d",
				test.latBands, test.lonBands, len(m.Vertices), test.outVertices)
		}
		if len(m.Indices) != test.outIndices {
			t.Errorf("UVSphere(%d,%d) indices=%d; expected %d",
				test.latBands, test.lonBands, len(m.Indices), test.outIndices)
		}
		if m.TriangleCount() != test.outIndices/3 {
			t.Errorf("UVSphere(%d,%d) triangles=%d; expected %d",
				test.latBands, test.lonBands, m.TriangleCount(), test.outIndices/3)
		}
	}
}

func TestUVSphereIndicesInBounds(t *testing.T) {
	for _, test := range sphereSizeTests {
		m := UVSphere(test.latBands, test.lonBands)
		for i, index := range m.Indices {
			if index >= uint32(len(m.Vertices)) {
				t.Fatalf("UVSphere(%d,%d) index[%d]=%d out of bounds (%d vertices)",
					test.latBands, test.lonBands, i, index, len(m.Vertices))
			}
		}
	}
}

func TestUVSphereUnitRadius(t *testing.T) {
	const tolerance = 1e-5

	m := UVSphere(16, 16)
	for i, v := range m.Vertices {
		if r := v.Position.Len(); math.Abs(float64(r-1)) > tolerance {
			t.Errorf("vertex %d position length %f; expected 1", i, r)
		}
		if v.Normal != v.Position {
			t.Errorf("vertex %d normal %v != position %v", i, v.Normal, v.Position)
		}
	}
}

func TestUVSphereByteSizes(t *testing.T) {
	m := UVSphere(4, 4)
	if m.VertexBytes() != 25*6*4 {
		t.Errorf("VertexBytes=%d; expected %d", m.VertexBytes(), 25*6*4)
	}
	if m.IndexBytes() != 96*4 {
		t.Errorf("IndexBytes=%d; expected %d", m.IndexBytes(), 96*4)
	}
}
