package config

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/osuushi/meshedit/editor"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds editor defaults. Fields not set in the file keep the values
// from Default.
type Config struct {
	Canvas  Canvas  `yaml:"canvas"`
	Vertex  Vertex  `yaml:"vertex"`
	Export  Export  `yaml:"export"`
	Preview Preview `yaml:"preview"`
}

// Canvas is the raw pointer range that maps onto [-1, 1].
type Canvas struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

type Vertex struct {
	Color     [3]uint8   `yaml:"color"`
	TexCoords [2]float64 `yaml:"tex_coords"`
	TexID     uint32     `yaml:"tex_id"`
}

type Export struct {
	Indent string `yaml:"indent"`
}

type Preview struct {
	Size   int  `yaml:"size"`
	Inline bool `yaml:"inline"`
}

func Default() Config {
	return Config{
		Canvas: Canvas{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1},
		Vertex: Vertex{Color: [3]uint8{255, 255, 255}},
		Export: Export{Indent: "    "},
		Preview: Preview{
			Size: 512,
		},
	}
}

// Load reads a YAML config file. A missing file is not an error; the defaults
// are returned instead.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Unknown keys are rejected. An inverted or empty canvas range is replaced
// with the default one.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}

	if cfg.Canvas.MaxX <= cfg.Canvas.MinX || cfg.Canvas.MaxY <= cfg.Canvas.MinY {
		log.Printf("Invalid canvas range %+v, using default", cfg.Canvas)
		cfg.Canvas = Default().Canvas
	}
	if cfg.Preview.Size <= 0 {
		cfg.Preview.Size = Default().Preview.Size
	}
	return cfg, nil
}

func (c Config) Bounds() editor.Bounds {
	return editor.Bounds{
		MinX: c.Canvas.MinX, MaxX: c.Canvas.MaxX,
		MinY: c.Canvas.MinY, MaxY: c.Canvas.MaxY,
	}
}

// NewSession builds a session whose clicks use the configured defaults.
func (c Config) NewSession() *editor.Session {
	s := editor.NewSession(editor.NewModel(c.Bounds()))
	s.Color = editor.Color{R: c.Vertex.Color[0], G: c.Vertex.Color[1], B: c.Vertex.Color[2]}
	s.TexCoords = editor.TexCoords{U: c.Vertex.TexCoords[0], V: c.Vertex.TexCoords[1]}
	s.TexID = c.Vertex.TexID
	s.Export = editor.ExportOptions{Indent: c.Export.Indent}
	return s
}
