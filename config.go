package shapedraw

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ColorConfig is a Color as written in YAML.
type ColorConfig struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

func (c ColorConfig) color() Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func colorConfig(c Color) ColorConfig {
	return ColorConfig{R: c.R, G: c.G, B: c.B, A: c.A}
}

// MaterialConfig is a Material as written in YAML.
type MaterialConfig struct {
	Color ColorConfig `yaml:"color"`
	Blend string      `yaml:"blend"`
}

// ResourcesConfig is the YAML form of Resources.
type ResourcesConfig struct {
	InitialSize   float64        `yaml:"initial_size"`
	InitialHeight float64        `yaml:"initial_height"`
	Material      MaterialConfig `yaml:"material"`
}

// DrawingboardConfig is the YAML form of DrawingboardResources.
type DrawingboardConfig struct {
	Size        float64     `yaml:"size"`
	Color       ColorConfig `yaml:"color"`
	FadeSeconds float32     `yaml:"fade_seconds"`
}

// Config is the on-disk configuration of a Plugin. Fields left out of a file
// keep their DefaultConfig values.
type Config struct {
	AlwaysEnabled      bool               `yaml:"always_enabled"`
	EnableDrawingboard bool               `yaml:"enable_drawingboard"`
	Debug              bool               `yaml:"debug"`
	Resources          ResourcesConfig    `yaml:"resources"`
	Drawingboard       DrawingboardConfig `yaml:"drawingboard"`
}

// DefaultConfig mirrors DefaultOptions.
func DefaultConfig() Config {
	opts := DefaultOptions()
	return Config{
		AlwaysEnabled:      opts.AlwaysEnabled,
		EnableDrawingboard: opts.EnableDrawingboard,
		Debug:              opts.Debug,
		Resources: ResourcesConfig{
			InitialSize:   opts.Resources.InitialSize,
			InitialHeight: opts.Resources.InitialHeight,
			Material: MaterialConfig{
				Color: colorConfig(opts.Resources.Material.Color),
				Blend: opts.Resources.Material.Blend.String(),
			},
		},
		Drawingboard: DrawingboardConfig{
			Size:        opts.Drawingboard.Size,
			Color:       colorConfig(opts.Drawingboard.Color),
			FadeSeconds: opts.Drawingboard.FadeSeconds,
		},
	}
}

const configSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "definitions": {
    "unit": {"type": "number", "minimum": 0, "maximum": 1},
    "color": {
      "type": "object",
      "properties": {
        "r": {"$ref": "#/definitions/unit"},
        "g": {"$ref": "#/definitions/unit"},
        "b": {"$ref": "#/definitions/unit"},
        "a": {"$ref": "#/definitions/unit"}
      },
      "additionalProperties": false
    }
  },
  "type": "object",
  "properties": {
    "always_enabled": {"type": "boolean"},
    "enable_drawingboard": {"type": "boolean"},
    "debug": {"type": "boolean"},
    "resources": {
      "type": "object",
      "properties": {
        "initial_size": {"type": "number", "exclusiveMinimum": 0},
        "initial_height": {"type": "number", "exclusiveMinimum": 0},
        "material": {
          "type": "object",
          "properties": {
            "color": {"$ref": "#/definitions/color"},
            "blend": {"enum": ["normal", "add", "multiply", "screen", "none"]}
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    },
    "drawingboard": {
      "type": "object",
      "properties": {
        "size": {"type": "number", "exclusiveMinimum": 0},
        "color": {"$ref": "#/definitions/color"},
        "fade_seconds": {"type": "number", "minimum": 0}
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

var configSchema = jsonschema.MustCompileString("shapedraw-config.json", configSchemaJSON)

// LoadConfig parses and validates a YAML configuration.
func LoadConfig(data []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if doc != nil {
		if err := validateConfig(doc); err != nil {
			return Config{}, err
		}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the YAML configuration at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

// validateConfig checks a decoded YAML document against the config schema.
// The document is round-tripped through JSON so the validator sees plain
// JSON types.
func validateConfig(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// Options converts the configuration into plugin options. Camera,
// Intersector, Input and MapTouch are left for the caller.
func (c Config) Options() Options {
	blend, ok := ParseBlendMode(strings.ToLower(c.Resources.Material.Blend))
	if !ok {
		blend = BlendNormal
	}
	return Options{
		AlwaysEnabled:      c.AlwaysEnabled,
		EnableDrawingboard: c.EnableDrawingboard,
		Debug:              c.Debug,
		Resources: Resources{
			Material: &Material{
				Color: c.Resources.Material.Color.color(),
				Blend: blend,
			},
			InitialSize:   c.Resources.InitialSize,
			InitialHeight: c.Resources.InitialHeight,
		},
		Drawingboard: DrawingboardResources{
			Size:        c.Drawingboard.Size,
			Color:       c.Drawingboard.Color.color(),
			FadeSeconds: c.Drawingboard.FadeSeconds,
		},
	}
}
