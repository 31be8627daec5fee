package geometry

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/arnavsurve/devicectl/internal/screen"
	"gopkg.in/yaml.v3"
)

// Geometry is the screen, window and orientation state read from a YAML
// file:
//
//	screen: {width: 375, height: 812}
//	window: {width: 375}
//	orientation: {device: portrait, interface: portrait}
type Geometry struct {
	Screen      Size        `yaml:"screen" json:"screen"`
	Window      Window      `yaml:"window" json:"window"`
	Orientation Orientation `yaml:"orientation" json:"orientation"`
}

type Size struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

type Window struct {
	// Width defaults to the screen width when zero.
	Width float64 `yaml:"width" json:"width"`
}

type Orientation struct {
	Device    string `yaml:"device" json:"device"`
	Interface string `yaml:"interface" json:"interface"`
}

func (g *Geometry) DeviceOrientation() screen.DeviceOrientation {
	return screen.ParseDeviceOrientation(g.Orientation.Device)
}

func (g *Geometry) InterfaceOrientation() screen.InterfaceOrientation {
	return screen.ParseInterfaceOrientation(g.Orientation.Interface)
}

var errEmpty = errors.New("geometry file is empty")

func Parse(data []byte) (*Geometry, error) {
	// editors truncate before writing; an empty read is not a real state
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmpty
	}

	var g Geometry
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse geometry: %w", err)
	}
	if g.Window.Width == 0 {
		g.Window.Width = g.Screen.Width
	}
	return &g, nil
}

func Load(path string) (*Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry: %w", err)
	}
	return Parse(data)
}
