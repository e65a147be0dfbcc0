package render

import (
	_ "embed" // shader sources
	"log"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"
)

//go:embed shaders/sphere.vert
var sphereVertexShader string

//go:embed shaders/sphere.frag
var sphereFragmentShader string

type Program struct {
	ID uint32
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

// LinkProgram compiles both stages and links them. Shader objects are
// deleted once the program is linked. Driver diagnostics go to the log
// before the wrapped error is returned.
func LinkProgram(vertexShaderText, fragmentShaderText string) (*Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexShaderText)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderText)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	var isLinked int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &isLinked)
	if isLinked == gl.FALSE {
		var logSize int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetProgramInfoLog(id, int32(len(buf)), &logSize, &buf[0])
		errString := string(buf[:logSize])
		log.Printf("Failed to link program:\n%s", errString)

		gl.DeleteProgram(id)
		return nil, errors.Errorf("failed to link program: %q", errString)
	}
	return &Program{ID: id}, nil
}

func compileShader(xtype uint32, text string) (uint32, error) {
	shader := gl.CreateShader(xtype)

	csource, free := gl.Strs(text + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logSize int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])
		errString := string(buf[:logSize])
		log.Printf("Failed to compile shader:\n%s", errString)

		gl.DeleteShader(shader)
		return gl.INVALID_INDEX, errors.Errorf("failed to compile shader: %q", errString)
	}
	return shader, nil
}

// SphereProgram is the instanced sphere shader with its uniform and
// attribute locations resolved.
type SphereProgram struct {
	*Program

	UView       int32
	UProjection int32

	APosition int32
	ANormal   int32
	AModel    int32 // first of 4 consecutive vec4 columns
	AColor    int32
}

func LoadSphereProgram() (*SphereProgram, error) {
	program, err := LinkProgram(sphereVertexShader, sphereFragmentShader)
	if err != nil {
		return nil, err
	}

	sp := &SphereProgram{Program: program}

	sp.UView = gl.GetUniformLocation(sp.ID, gl.Str("uView\x00"))
	sp.UProjection = gl.GetUniformLocation(sp.ID, gl.Str("uProjection\x00"))

	sp.APosition = gl.GetAttribLocation(sp.ID, gl.Str("aPosition\x00"))
	sp.ANormal = gl.GetAttribLocation(sp.ID, gl.Str("aNormal\x00"))
	sp.AModel = gl.GetAttribLocation(sp.ID, gl.Str("aModel\x00"))
	sp.AColor = gl.GetAttribLocation(sp.ID, gl.Str("aColor\x00"))

	return sp, nil
}
