package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
grid:
  x: 4
  y: 5
  z: 6
spread: 2.0
wireframe: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.Grid != (GridSize{X: 4, Y: 5, Z: 6}) {
		t.Errorf("grid=%+v; expected {4 5 6}", s.Grid)
	}
	if s.Spread != 2.0 {
		t.Errorf("spread=%f; expected 2.0", s.Spread)
	}
	if !s.Wireframe {
		t.Error("wireframe not applied")
	}

	// Values the file does not name keep their defaults.
	d := Default()
	if s.Width != d.Width || s.Height != d.Height {
		t.Errorf("window size %dx%d; expected default %dx%d", s.Width, s.Height, d.Width, d.Height)
	}
	if s.LatBands != d.LatBands || s.LonBands != d.LonBands {
		t.Errorf("bands %d/%d; expected default %d/%d", s.LatBands, s.LonBands, d.LatBands, d.LonBands)
	}
	if s.Scale != d.Scale || s.CameraSpeed != d.CameraSpeed {
		t.Errorf("scale=%f speed=%f; expected defaults %f %f", s.Scale, s.CameraSpeed, d.Scale, d.CameraSpeed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
