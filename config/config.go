package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type GridSize struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// Settings holds everything the demo can be tuned with. Defaults match
// the built-in scene; a YAML file or flags override them.
type Settings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	LatBands int `yaml:"lat_bands"`
	LonBands int `yaml:"lon_bands"`

	Grid   GridSize `yaml:"grid"`
	Spread float32  `yaml:"spread"`
	Scale  float32  `yaml:"scale"`

	CameraSpeed float32 `yaml:"camera_speed"`
	Wireframe   bool    `yaml:"wireframe"`
}

func Default() Settings {
	return Settings{
		Width:       800,
		Height:      600,
		LatBands:    30,
		LonBands:    30,
		Grid:        GridSize{X: 30, Y: 30, Z: 30},
		Spread:      1.15,
		Scale:       0.33,
		CameraSpeed: 0.1,
	}
}

// Load overlays values from a YAML file onto the defaults, so a partial
// file only changes what it names.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "read settings")
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parse settings %q", path)
	}
	return s, nil
}
