package render

import (
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/spherefield/lattice"
	"github.com/mogaika/spherefield/mesh"
)

// SphereRenderer owns the GL objects for the instanced lattice: one
// shared sphere mesh, one packed instance buffer, one draw call per
// frame. All buffers are uploaded once at construction and never
// rewritten.
type SphereRenderer struct {
	program *SphereProgram

	glVAO         uint32
	glVBO         uint32
	glEBO         uint32
	glInstanceVBO uint32

	indexCount    int32
	instanceCount int32

	wireframe bool
}

func NewSphereRenderer(m mesh.Mesh, instances []lattice.Instance, wireframe bool) (*SphereRenderer, error) {
	program, err := LoadSphereProgram()
	if err != nil {
		return nil, err
	}

	r := &SphereRenderer{
		program:       program,
		indexCount:    int32(len(m.Indices)),
		instanceCount: int32(len(instances)),
		wireframe:     wireframe,
	}

	var vertex mesh.Vertex
	vertexStride := int32(unsafe.Sizeof(vertex))

	gl.GenVertexArrays(1, &r.glVAO)
	gl.BindVertexArray(r.glVAO)

	gl.GenBuffers(1, &r.glVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glVBO)
	gl.BufferData(gl.ARRAY_BUFFER, m.VertexBytes(), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(uint32(program.APosition), 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(vertex.Position))
	gl.EnableVertexAttribArray(uint32(program.APosition))

	gl.VertexAttribPointerWithOffset(uint32(program.ANormal), 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(vertex.Normal))
	gl.EnableVertexAttribArray(uint32(program.ANormal))

	gl.GenBuffers(1, &r.glEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.glEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, m.IndexBytes(), gl.Ptr(m.Indices), gl.STATIC_DRAW)

	var instance lattice.Instance
	instanceStride := int32(lattice.Stride)

	gl.GenBuffers(1, &r.glInstanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glInstanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(instances)*lattice.Stride, gl.Ptr(instances), gl.STATIC_DRAW)

	// The model matrix takes 4 consecutive attribute slots, one column
	// each, advancing once per instance.
	for column := uintptr(0); column < 4; column++ {
		location := uint32(program.AModel) + uint32(column)
		gl.VertexAttribPointerWithOffset(location, 4, gl.FLOAT, false, instanceStride,
			unsafe.Offsetof(instance.Model)+column*unsafe.Sizeof(mgl32.Vec4{}))
		gl.EnableVertexAttribArray(location)
		gl.VertexAttribDivisor(location, 1)
	}

	gl.VertexAttribPointerWithOffset(uint32(program.AColor), 3, gl.FLOAT, false, instanceStride, unsafe.Offsetof(instance.Color))
	gl.EnableVertexAttribArray(uint32(program.AColor))
	gl.VertexAttribDivisor(uint32(program.AColor), 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	runtime.KeepAlive(m.Vertices)
	runtime.KeepAlive(m.Indices)
	runtime.KeepAlive(instances)

	return r, nil
}

func (r *SphereRenderer) InstanceCount() int {
	return int(r.instanceCount)
}

func (r *SphereRenderer) Draw(view, projection mgl32.Mat4) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.UseProgram(r.program.ID)
	gl.UniformMatrix4fv(r.program.UView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.program.UProjection, 1, false, &projection[0])

	gl.BindVertexArray(r.glVAO)
	gl.DrawElementsInstancedWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0, r.instanceCount)
	gl.BindVertexArray(0)
}

func (r *SphereRenderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.glVAO)
	gl.DeleteBuffers(1, &r.glVBO)
	gl.DeleteBuffers(1, &r.glEBO)
	gl.DeleteBuffers(1, &r.glInstanceVBO)
	r.program.Delete()
}
