package render

import (
	"log"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// Window owns the GLFW window and the GL context bound to it.
// An OpenGL context is current on the calling thread after NewWindow
// returns; the caller must stay on that thread.
type Window struct {
	glfwWindow *glfw.Window

	Width  int
	Height int
}

func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "initialize OpenGL")
	}

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(debugCallback, nil)

	log.Printf("Version: %q", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Window{glfwWindow: w, Width: width, Height: height}, nil
}

func (w *Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

func (w *Window) Clear(color [3]float32) {
	gl.ClearColor(color[0], color[1], color[2], 1.0)
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Present swaps buffers (blocking on vsync) and polls window events.
func (w *Window) Present() {
	w.glfwWindow.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) Destroy() {
	glfw.Terminate()
}
