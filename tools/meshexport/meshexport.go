package main

import (
	"flag"
	"log"

	"github.com/qmuntal/gltf"

	"github.com/mogaika/spherefield/mesh"
)

func main() {
	var latBands, lonBands int
	var out string
	flag.IntVar(&latBands, "lat", 30, "Latitude bands")
	flag.IntVar(&lonBands, "lon", 30, "Longitude bands")
	flag.StringVar(&out, "o", "sphere.gltf", "Output .gltf path")
	flag.Parse()

	m := mesh.UVSphere(latBands, lonBands)
	doc := m.ExportGLTF("sphere")

	if err := gltf.Save(doc, out); err != nil {
		log.Fatalf("Failed to save %q: %v", out, err)
	}
	log.Printf("Saved %q: %d vertices, %d triangles", out, len(m.Vertices), m.TriangleCount())
}
