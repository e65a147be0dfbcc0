package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/spherefield/config"
	"github.com/mogaika/spherefield/lattice"
	"github.com/mogaika/spherefield/mesh"
	"github.com/mogaika/spherefield/render"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var configPath string
	var width, height, grid, bands int
	var spread, scale, speed float64
	var wireframe, verbose bool
	flag.StringVar(&configPath, "config", "", "Path to YAML settings file")
	flag.IntVar(&width, "width", 0, "Window width override")
	flag.IntVar(&height, "height", 0, "Window height override")
	flag.IntVar(&grid, "grid", 0, "Cubic lattice size override")
	flag.IntVar(&bands, "bands", 0, "Sphere latitude/longitude bands override")
	flag.Float64Var(&spread, "spread", 0, "Lattice spacing override")
	flag.Float64Var(&scale, "scale", 0, "Sphere scale override")
	flag.Float64Var(&speed, "speed", 0, "Camera orbit speed override")
	flag.BoolVar(&wireframe, "wireframe", false, "Render wireframe instead of fill")
	flag.BoolVar(&verbose, "verbose", false, "Dump resolved settings on start")
	flag.Parse()

	s := config.Default()
	if configPath != "" {
		var err error
		if s, err = config.Load(configPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			s.Width = width
		case "height":
			s.Height = height
		case "grid":
			s.Grid = config.GridSize{X: grid, Y: grid, Z: grid}
		case "bands":
			s.LatBands, s.LonBands = bands, bands
		case "spread":
			s.Spread = float32(spread)
		case "scale":
			s.Scale = float32(scale)
		case "speed":
			s.CameraSpeed = float32(speed)
		case "wireframe":
			s.Wireframe = wireframe
		}
	})

	if verbose {
		log.Printf("Settings:\n%s", spew.Sdump(s))
	}

	window, err := render.NewWindow(s.Width, s.Height, "Instanced Spheres")
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	sphere := mesh.UVSphere(s.LatBands, s.LonBands)
	instances := lattice.Build(
		lattice.Extents{X: s.Grid.X, Y: s.Grid.Y, Z: s.Grid.Z}, s.Spread, s.Scale)

	renderer, err := render.NewSphereRenderer(sphere, instances, s.Wireframe)
	if err != nil {
		log.Fatalf("Failed to set up renderer: %v", err)
	}
	defer renderer.Destroy()

	log.Printf("%d vertices, %d triangles, %d instances",
		len(sphere.Vertices), sphere.TriangleCount(), renderer.InstanceCount())

	cameraDist := s.Spread * float32(s.Grid.X) * 1.5
	camera := &render.Orbit{
		Target: mgl32.Vec3{0, float32(s.Grid.Y) * s.Spread * 0.5, 0},
		Up:     mgl32.Vec3{0, 0, -1},
		Radius: cameraDist,
		Height: cameraDist,
		Speed:  s.CameraSpeed,
	}

	projection := mgl32.Perspective(mgl32.DegToRad(60), window.Aspect(), 0.1, 1000)

	timer := render.NewTimer(window.Time())
	for !window.ShouldClose() {
		window.Clear([3]float32{0, 0, 0})

		frame := timer.Frame(window.Time())
		renderer.Draw(camera.ViewMatrix(frame.Elapsed), projection)

		window.Present()
	}
}
