package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	TilesFile = "tiles.yaml"
	HUDFile   = "hud.yaml"

	SheetWater = "water"
	SheetWall  = "wall"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TilesSpec configures the tile grid and the two autotile sheets.
type TilesSpec struct {
	TileSize float64       `yaml:"tile_size"`
	Zoom     float64       `yaml:"zoom"`
	Water    TileSheetSpec `yaml:"water"`
	Wall     TileSheetSpec `yaml:"wall"`
}

type TileSheetSpec struct {
	Image       string     `yaml:"image"`
	FrameW      int        `yaml:"frame_w"`
	FrameH      int        `yaml:"frame_h"`
	Frames      int        `yaml:"frames"`
	Placeholder *YAMLColor `yaml:"placeholder"`
}

func LoadTilesSpec() (*TilesSpec, error) {
	spec, err := LoadSpec[TilesSpec](TilesFile)
	if err != nil {
		return nil, err
	}
	if spec.TileSize <= 0 {
		return nil, fmt.Errorf("prefabs: %s: tile_size must be positive", TilesFile)
	}
	return &spec, nil
}

// HUDSpec configures the host counter and timer overlay.
type HUDSpec struct {
	TextColor  *YAMLColor `yaml:"text_color"`
	PanelColor *YAMLColor `yaml:"panel_color"`
	PadTop     int        `yaml:"pad_top"`
	PadLeft    int        `yaml:"pad_left"`
	Spacing    int        `yaml:"spacing"`
}

func LoadHUDSpec() (*HUDSpec, error) {
	spec, err := LoadSpec[HUDSpec](HUDFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor decodes "#rrggbb", "#rrggbbaa" or a colornames name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the decoded colour, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
