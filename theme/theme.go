package theme

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Theme is the palette used by the renderer.
type Theme struct {
	Background YAMLColor `yaml:"background"`
	Neutral    YAMLColor `yaml:"neutral"`
	Highlight  YAMLColor `yaml:"highlight"`
	Pressure   YAMLColor `yaml:"pressure"`
	StickRing  YAMLColor `yaml:"stick_ring"`
	Ink        YAMLColor `yaml:"ink"`
	Square     YAMLColor `yaml:"square"`
	Triangle   YAMLColor `yaml:"triangle"`
	Circle     YAMLColor `yaml:"circle"`
	Cross      YAMLColor `yaml:"cross"`
	HUD        YAMLColor `yaml:"hud"`
	HUDText    YAMLColor `yaml:"hud_text"`
	HUDButton  YAMLColor `yaml:"hud_button"`
	HUDHover   YAMLColor `yaml:"hud_button_hover"`
}

// Default returns the built-in palette.
func Default() *Theme {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic("theme: embedded default: " + err.Error())
	}
	return t
}

// Parse decodes a theme document. Keys missing from data keep their
// built-in colours.
func Parse(data []byte) (*Theme, error) {
	t := fallback()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("theme: unmarshal: %w", err)
	}

	return t, nil
}

// Load reads and parses the theme file at path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: load %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}

	return t, nil
}

// fallback mirrors default.yaml so partial documents stay fully coloured
// even if the embedded file is edited down.
func fallback() *Theme {
	return &Theme{
		Background: YAMLColor{colornames.White},
		Neutral:    YAMLColor{color.NRGBA{R: 130, G: 130, B: 130, A: 255}},
		Highlight:  YAMLColor{color.NRGBA{R: 255, G: 203, B: 0, A: 255}},
		Pressure:   YAMLColor{color.NRGBA{R: 0, G: 121, B: 241, A: 255}},
		StickRing:  YAMLColor{color.NRGBA{R: 200, G: 200, B: 200, A: 255}},
		Ink:        YAMLColor{colornames.Black},
		Square:     YAMLColor{color.NRGBA{R: 255, G: 109, B: 194, A: 255}},
		Triangle:   YAMLColor{color.NRGBA{R: 0, G: 158, B: 47, A: 255}},
		Circle:     YAMLColor{color.NRGBA{R: 230, G: 41, B: 55, A: 255}},
		Cross:      YAMLColor{color.NRGBA{R: 0, G: 121, B: 241, A: 255}},
		HUD:        YAMLColor{color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 220}},
		HUDText:    YAMLColor{colornames.White},
		HUDButton:  YAMLColor{color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}},
		HUDHover:   YAMLColor{color.NRGBA{R: 0x77, G: 0x77, B: 0x77, A: 255}},
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	// named colours from the SVG palette, e.g. "gold"
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
